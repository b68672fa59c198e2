// This file is part of Gopherale.
//
// Gopherale is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherale is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherale.  If not, see <https://www.gnu.org/licenses/>.

package dummy

import (
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"math/bits"
	"os"
	"strconv"

	"github.com/jetsetilly/gopherale/curated"
	"github.com/jetsetilly/gopherale/engine"
)

// Screen dimensions of the dummy machine.
const (
	ScreenWidth  = 160
	ScreenHeight = 210
)

// LifeFrames is the number of frames between each life being lost.
const LifeFrames = 250

// StartingLives is the number of lives at the start of every episode.
const StartingLives = 3

// the number of legal actions. the first MinimalActions are also the minimal
// action set.
const (
	LegalActions   = 18
	MinimalActions = 6
)

// Sentinal error patterns.
const (
	ROMLoad    = "dummy: cannot load rom: %v"
	Screenshot = "dummy: cannot save screenshot: %v"
	Closed     = "dummy: engine is closed"
)

// default values for the options that the machine understands. other keys
// can be set and retrieved but have no effect.
var defaultOptions = map[string]string{
	"random_seed":                "0",
	"frame_skip":                 "1",
	"max_num_frames_per_episode": "0",
	"repeat_action_probability":  "0",
}

// machine implements the engine.Engine interface.
type machine struct {
	backend *Backend
	closed  bool

	options map[string]string

	rom    []byte
	loaded bool

	st state

	// single save slot for SaveState() and LoadState()
	slot []byte
}

// compile-time interface check.
var _ engine.Engine = (*machine)(nil)

func newMachine(b *Backend) *machine {
	m := &machine{
		backend: b,
		options: make(map[string]string),
	}
	for k, v := range defaultOptions {
		m.options[k] = v
	}
	return m
}

func (m *machine) check() {
	if m.closed {
		panic(curated.Errorf(Closed))
	}
}

func (m *machine) Close() error {
	if m.closed {
		return curated.Errorf(Closed)
	}
	m.closed = true
	return nil
}

func (m *machine) GetString(key string) string {
	m.check()
	return m.options[key]
}

func (m *machine) GetBool(key string) bool {
	m.check()
	v, _ := strconv.ParseBool(m.options[key])
	return v
}

func (m *machine) GetInt(key string) int32 {
	m.check()
	v, _ := strconv.ParseInt(m.options[key], 10, 32)
	return int32(v)
}

func (m *machine) GetFloat(key string) float32 {
	m.check()
	v, _ := strconv.ParseFloat(m.options[key], 32)
	return float32(v)
}

func (m *machine) SetString(key string, value string) {
	m.check()
	m.options[key] = value
}

func (m *machine) SetBool(key string, value bool) {
	m.check()
	m.options[key] = strconv.FormatBool(value)
}

func (m *machine) SetInt(key string, value int32) {
	m.check()
	m.options[key] = strconv.FormatInt(int64(value), 10)
}

func (m *machine) SetFloat(key string, value float32) {
	m.check()
	m.options[key] = strconv.FormatFloat(float64(value), 'g', -1, 32)
}

func (m *machine) LoadROM(path string) error {
	m.check()

	rom, err := os.ReadFile(path)
	if err != nil {
		return curated.Errorf(ROMLoad, err)
	}
	if len(rom) == 0 {
		return curated.Errorf(ROMLoad, "empty file")
	}

	m.rom = rom
	m.loaded = true
	m.slot = nil

	// random seed takes effect when the ROM is loaded
	m.st = state{
		ROMCRC: crc32.ChecksumIEEE(rom),
	}
	m.st.RNG = m.st.ROMCRC ^ uint32(m.GetInt("random_seed"))
	if m.st.RNG == 0 {
		m.st.RNG = 1
	}
	m.ResetGame()

	return nil
}

// xorshift random number generator. never returns zero if the seed was
// non-zero.
func (m *machine) random() uint32 {
	x := m.st.RNG
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	m.st.RNG = x
	return x
}

func (m *machine) gameOver() bool {
	if m.st.Lives <= 0 {
		return true
	}
	limit := m.GetInt("max_num_frames_per_episode")
	return limit > 0 && m.st.EpisodeFrame >= limit
}

func (m *machine) Act(action int32) int32 {
	m.check()
	if !m.loaded {
		return 0
	}

	skip := m.GetInt("frame_skip")
	if skip < 1 {
		skip = 1
	}

	sticky := m.GetFloat("repeat_action_probability")

	var reward int32
	for i := int32(0); i < skip; i++ {
		if m.gameOver() {
			break
		}

		// sticky actions
		if sticky > 0 && float32(m.random()%10000)/10000 < sticky {
			action = m.st.LastAction
		}
		m.st.LastAction = action

		reward += m.step(action)
	}

	return reward
}

// a single frame of the dummy machine.
func (m *machine) step(action int32) int32 {
	r := m.random()

	m.st.Frame++
	m.st.EpisodeFrame++

	idx := int(m.st.EpisodeFrame) % RAMSize
	m.st.RAM[idx] ^= byte(action) + byte(r)
	m.st.RAM[(idx+1)%RAMSize] += byte(r >> 8)

	if m.st.EpisodeFrame%LifeFrames == 0 {
		m.st.Lives--
	}

	// firing actions are occasionally rewarded
	if action == 1 || action >= 10 {
		if r&0x0f == 0 {
			return 1
		}
	}

	return 0
}

func (m *machine) GameOver() bool {
	m.check()
	return m.loaded && m.gameOver()
}

func (m *machine) ResetGame() {
	m.check()
	if !m.loaded {
		return
	}

	for i := range m.st.RAM {
		m.st.RAM[i] = m.rom[i%len(m.rom)]
	}
	m.st.EpisodeFrame = 0
	m.st.Lives = StartingLives
	m.st.LastAction = 0
}

func (m *machine) LegalActionSize() int {
	m.check()
	return LegalActions
}

func (m *machine) LegalActionSet(actions []int32) {
	m.check()
	for i := range actions {
		actions[i] = int32(i)
	}
}

func (m *machine) MinimalActionSize() int {
	m.check()
	return MinimalActions
}

func (m *machine) MinimalActionSet(actions []int32) {
	m.check()
	for i := range actions {
		actions[i] = int32(i)
	}
}

func (m *machine) FrameNumber() int32 {
	m.check()
	return m.st.Frame
}

func (m *machine) EpisodeFrameNumber() int32 {
	m.check()
	return m.st.EpisodeFrame
}

func (m *machine) Lives() int32 {
	m.check()
	return m.st.Lives
}

func (m *machine) ScreenWidth() int {
	m.check()
	return ScreenWidth
}

func (m *machine) ScreenHeight() int {
	m.check()
	return ScreenHeight
}

// palette index of the pixel at x, y. the screen is a 16x14 grid of RAM
// cells. palette indexes are always even.
func (m *machine) pixel(x, y int) byte {
	cell := (x/10 + (y/15)*16) % RAMSize
	return m.st.RAM[cell] &^ 0x01
}

func (m *machine) Screen(buf []byte) {
	m.check()
	for i := range buf {
		buf[i] = m.pixel(i%ScreenWidth, i/ScreenWidth)
	}
}

// rgb packs the colour of the palette index into a single byte of RGB
// (3-3-2).
func rgb(p byte) byte {
	return bits.RotateLeft8(p, 3)
}

func (m *machine) ScreenRGB(buf []byte) {
	m.check()
	for i := range buf {
		buf[i] = rgb(m.pixel(i%ScreenWidth, i/ScreenWidth))
	}
}

func (m *machine) RAMSize() int {
	m.check()
	return RAMSize
}

func (m *machine) RAM(buf []byte) {
	m.check()
	copy(buf, m.st.RAM[:])
}

func (m *machine) SaveState() {
	m.check()
	st := m.st
	st.Kind = kindSystem
	m.slot = st.marshal()
}

func (m *machine) LoadState() {
	m.check()
	if m.slot == nil {
		return
	}
	var st state
	if err := st.unmarshal(m.slot); err != nil {
		panic(err)
	}
	m.st = st
}

func (m *machine) SaveScreenPNG(path string) error {
	m.check()

	img := image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight))
	for y := 0; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			c := rgb(m.pixel(x, y))
			img.Set(x, y, color.RGBA{
				R: c & 0xe0,
				G: (c & 0x1c) << 3,
				B: (c & 0x03) << 6,
				A: 0xff,
			})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf(Screenshot, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return curated.Errorf(Screenshot, err)
	}

	return nil
}

func (m *machine) clone(kind stateKind) engine.Snapshot {
	st := m.st
	st.Kind = kind
	return m.backend.store(st.marshal())
}

func (m *machine) CloneState() engine.Snapshot {
	m.check()
	return m.clone(kindLogic)
}

func (m *machine) CloneSystemState() engine.Snapshot {
	m.check()
	return m.clone(kindSystem)
}

func (m *machine) restore(s engine.Snapshot, withRNG bool) {
	var st state
	if err := st.unmarshal(m.backend.lookup(s)); err != nil {
		panic(err)
	}

	rng := m.st.RNG
	m.st = st
	if !withRNG || st.Kind != kindSystem {
		m.st.RNG = rng
	}
}

func (m *machine) RestoreState(s engine.Snapshot) {
	m.check()
	m.restore(s, false)
}

func (m *machine) RestoreSystemState(s engine.Snapshot) {
	m.check()
	m.restore(s, true)
}
