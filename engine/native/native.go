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

//go:build ale && cgo

package native

/*
#cgo LDFLAGS: -lale_c
#include <stdlib.h>

typedef struct ALEInterface ALEInterface;
typedef struct ALEState ALEState;

ALEInterface *ALE_new();
void ALE_del(ALEInterface *ale);

const char *getString(ALEInterface *ale, const char *key);
int getBool(ALEInterface *ale, const char *key);
int getInt(ALEInterface *ale, const char *key);
float getFloat(ALEInterface *ale, const char *key);

void setString(ALEInterface *ale, const char *key, const char *value);
void setBool(ALEInterface *ale, const char *key, int value);
void setInt(ALEInterface *ale, const char *key, int value);
void setFloat(ALEInterface *ale, const char *key, float value);

void loadROM(ALEInterface *ale, const char *rom_file);

int act(ALEInterface *ale, int action);
int game_over(ALEInterface *ale);
void reset_game(ALEInterface *ale);

void getLegalActionSet(ALEInterface *ale, int *actions);
int getLegalActionSize(ALEInterface *ale);
void getMinimalActionSet(ALEInterface *ale, int *actions);
int getMinimalActionSize(ALEInterface *ale);

int getFrameNumber(ALEInterface *ale);
int lives(ALEInterface *ale);
int getEpisodeFrameNumber(ALEInterface *ale);

int getScreenWidth(ALEInterface *ale);
int getScreenHeight(ALEInterface *ale);
void getScreen(ALEInterface *ale, unsigned char *screen_data);
void getScreenRGB(ALEInterface *ale, unsigned char *output_buffer);

int getRAMSize(ALEInterface *ale);
void getRAM(ALEInterface *ale, unsigned char *ram);

void saveState(ALEInterface *ale);
void loadState(ALEInterface *ale);
void saveScreenPNG(ALEInterface *ale, const char *filename);

ALEState *cloneState(ALEInterface *ale);
void restoreState(ALEInterface *ale, ALEState *state);
ALEState *cloneSystemState(ALEInterface *ale);
void restoreSystemState(ALEInterface *ale, ALEState *state);
void deleteState(ALEState *state);

const char *encodeState(ALEState *state, char *buf);
int encodeStateLen(ALEState *state);
ALEState *decodeState(const char *serialized, int len);
*/
import "C"

import (
	"os"
	"sync"
	"unsafe"

	"github.com/jetsetilly/gopherale/curated"
	"github.com/jetsetilly/gopherale/engine"
)

// Sentinal error patterns.
const (
	CreateFailed    = "native: ALE_new() failed"
	ROMLoad         = "native: cannot load rom: %v"
	DecodeFailed    = "native: decodeState() failed"
	UnknownSnapshot = "native: unknown snapshot (%d)"
	Closed          = "native: instance is closed"
	ShortBuffer     = "native: buffer too short for %s (%d < %d)"
)

// the palette expansion performed by getScreenRGB() writes three bytes for
// every pixel.
const rgbDepth = 3

type backend struct {
	crit   sync.Mutex
	next   engine.Snapshot
	states map[engine.Snapshot]*C.ALEState
}

func init() {
	engine.Register(&backend{
		states: make(map[engine.Snapshot]*C.ALEState),
	})
}

func (b *backend) Name() string {
	return engine.NativeName
}

func (b *backend) NewEngine() (engine.Engine, error) {
	p := C.ALE_new()
	if p == nil {
		return nil, curated.Errorf(CreateFailed)
	}
	return &instance{backend: b, p: p}, nil
}

func (b *backend) add(s *C.ALEState) engine.Snapshot {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.next++
	b.states[b.next] = s
	return b.next
}

func (b *backend) get(s engine.Snapshot) *C.ALEState {
	b.crit.Lock()
	defer b.crit.Unlock()
	p, ok := b.states[s]
	if !ok {
		panic(curated.Errorf(UnknownSnapshot, s))
	}
	return p
}

func (b *backend) DeleteState(s engine.Snapshot) {
	b.crit.Lock()
	p, ok := b.states[s]
	delete(b.states, s)
	b.crit.Unlock()

	if !ok {
		panic(curated.Errorf(UnknownSnapshot, s))
	}
	C.deleteState(p)
}

func (b *backend) EncodeStateLen(s engine.Snapshot) int {
	return int(C.encodeStateLen(b.get(s)))
}

func (b *backend) EncodeState(s engine.Snapshot, buf []byte) {
	p := b.get(s)
	need := int(C.encodeStateLen(p))
	if len(buf) < need {
		panic(curated.Errorf(ShortBuffer, "state", len(buf), need))
	}
	if need == 0 {
		return
	}
	C.encodeState(p, (*C.char)(unsafe.Pointer(&buf[0])))
}

func (b *backend) DecodeState(data []byte) (engine.Snapshot, error) {
	if len(data) == 0 {
		return 0, curated.Errorf(DecodeFailed)
	}
	p := C.decodeState((*C.char)(unsafe.Pointer(&data[0])), C.int(len(data)))
	if p == nil {
		return 0, curated.Errorf(DecodeFailed)
	}
	return b.add(p), nil
}

// instance implements the engine.Engine interface.
type instance struct {
	backend *backend
	p       *C.ALEInterface
}

func (in *instance) ptr() *C.ALEInterface {
	if in.p == nil {
		panic(curated.Errorf(Closed))
	}
	return in.p
}

func withCString(s string, f func(*C.char)) {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	f(cs)
}

func cbool(v bool) C.int {
	if v {
		return 1
	}
	return 0
}

func (in *instance) Close() error {
	if in.p == nil {
		return curated.Errorf(Closed)
	}
	C.ALE_del(in.p)
	in.p = nil
	return nil
}

func (in *instance) GetString(key string) string {
	var s string
	withCString(key, func(k *C.char) {
		s = C.GoString(C.getString(in.ptr(), k))
	})
	return s
}

func (in *instance) GetBool(key string) bool {
	var v bool
	withCString(key, func(k *C.char) {
		v = C.getBool(in.ptr(), k) != 0
	})
	return v
}

func (in *instance) GetInt(key string) int32 {
	var v int32
	withCString(key, func(k *C.char) {
		v = int32(C.getInt(in.ptr(), k))
	})
	return v
}

func (in *instance) GetFloat(key string) float32 {
	var v float32
	withCString(key, func(k *C.char) {
		v = float32(C.getFloat(in.ptr(), k))
	})
	return v
}

func (in *instance) SetString(key string, value string) {
	withCString(key, func(k *C.char) {
		withCString(value, func(v *C.char) {
			C.setString(in.ptr(), k, v)
		})
	})
}

func (in *instance) SetBool(key string, value bool) {
	withCString(key, func(k *C.char) {
		C.setBool(in.ptr(), k, cbool(value))
	})
}

func (in *instance) SetInt(key string, value int32) {
	withCString(key, func(k *C.char) {
		C.setInt(in.ptr(), k, C.int(value))
	})
}

func (in *instance) SetFloat(key string, value float32) {
	withCString(key, func(k *C.char) {
		C.setFloat(in.ptr(), k, C.float(value))
	})
}

// LoadROM checks that the file exists before handing it to the library,
// loadROM() itself reports nothing.
func (in *instance) LoadROM(path string) error {
	if _, err := os.Stat(path); err != nil {
		return curated.Errorf(ROMLoad, err)
	}
	withCString(path, func(p *C.char) {
		C.loadROM(in.ptr(), p)
	})
	return nil
}

func (in *instance) Act(action int32) int32 {
	return int32(C.act(in.ptr(), C.int(action)))
}

func (in *instance) GameOver() bool {
	return C.game_over(in.ptr()) != 0
}

func (in *instance) ResetGame() {
	C.reset_game(in.ptr())
}

func (in *instance) LegalActionSize() int {
	return int(C.getLegalActionSize(in.ptr()))
}

func (in *instance) LegalActionSet(actions []int32) {
	need := in.LegalActionSize()
	if len(actions) < need {
		panic(curated.Errorf(ShortBuffer, "legal action set", len(actions), need))
	}
	if need == 0 {
		return
	}
	C.getLegalActionSet(in.ptr(), (*C.int)(unsafe.Pointer(&actions[0])))
}

func (in *instance) MinimalActionSize() int {
	return int(C.getMinimalActionSize(in.ptr()))
}

func (in *instance) MinimalActionSet(actions []int32) {
	need := in.MinimalActionSize()
	if len(actions) < need {
		panic(curated.Errorf(ShortBuffer, "minimal action set", len(actions), need))
	}
	if need == 0 {
		return
	}
	C.getMinimalActionSet(in.ptr(), (*C.int)(unsafe.Pointer(&actions[0])))
}

func (in *instance) FrameNumber() int32 {
	return int32(C.getFrameNumber(in.ptr()))
}

func (in *instance) EpisodeFrameNumber() int32 {
	return int32(C.getEpisodeFrameNumber(in.ptr()))
}

func (in *instance) Lives() int32 {
	return int32(C.lives(in.ptr()))
}

func (in *instance) ScreenWidth() int {
	return int(C.getScreenWidth(in.ptr()))
}

func (in *instance) ScreenHeight() int {
	return int(C.getScreenHeight(in.ptr()))
}

func (in *instance) screenSize() int {
	return in.ScreenWidth() * in.ScreenHeight()
}

func (in *instance) Screen(buf []byte) {
	need := in.screenSize()
	if len(buf) < need {
		panic(curated.Errorf(ShortBuffer, "screen", len(buf), need))
	}
	if need == 0 {
		return
	}
	C.getScreen(in.ptr(), (*C.uchar)(unsafe.Pointer(&buf[0])))
}

// ScreenRGB fills the buffer from a scratch buffer large enough for the
// library's palette expansion.
func (in *instance) ScreenRGB(buf []byte) {
	need := in.screenSize()
	if len(buf) < need {
		panic(curated.Errorf(ShortBuffer, "rgb screen", len(buf), need))
	}
	if need == 0 {
		return
	}
	scratch := make([]byte, need*rgbDepth)
	C.getScreenRGB(in.ptr(), (*C.uchar)(unsafe.Pointer(&scratch[0])))
	copy(buf, scratch)
}

func (in *instance) RAMSize() int {
	return int(C.getRAMSize(in.ptr()))
}

func (in *instance) RAM(buf []byte) {
	need := in.RAMSize()
	if len(buf) < need {
		panic(curated.Errorf(ShortBuffer, "ram", len(buf), need))
	}
	if need == 0 {
		return
	}
	C.getRAM(in.ptr(), (*C.uchar)(unsafe.Pointer(&buf[0])))
}

func (in *instance) SaveState() {
	C.saveState(in.ptr())
}

func (in *instance) LoadState() {
	C.loadState(in.ptr())
}

func (in *instance) SaveScreenPNG(path string) error {
	withCString(path, func(p *C.char) {
		C.saveScreenPNG(in.ptr(), p)
	})
	return nil
}

func (in *instance) CloneState() engine.Snapshot {
	return in.backend.add(C.cloneState(in.ptr()))
}

func (in *instance) CloneSystemState() engine.Snapshot {
	return in.backend.add(C.cloneSystemState(in.ptr()))
}

func (in *instance) RestoreState(s engine.Snapshot) {
	C.restoreState(in.ptr(), in.backend.get(s))
}

func (in *instance) RestoreSystemState(s engine.Snapshot) {
	C.restoreSystemState(in.ptr(), in.backend.get(s))
}
