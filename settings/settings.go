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

package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopherale/curated"
)

// Sentinal error patterns.
const (
	Malformed = "settings: malformed entry (%s)"
	BadValue  = "settings: bad value for %s (%s): %v"
)

// Kind of value expected for a key.
type Kind int

// List of valid Kind values.
const (
	String Kind = iota
	Bool
	Int
	Float
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	}
	return "string"
}

// Known lists the keys that have a type other than String.
var Known = map[string]Kind{
	"random_seed":                Int,
	"frame_skip":                 Int,
	"max_num_frames_per_episode": Int,
	"repeat_action_probability":  Float,
	"color_averaging":            Bool,
	"display_screen":             Bool,
	"sound":                      Bool,
	"truncate_on_loss_of_life":   Bool,
	"record_screen_dir":          String,
	"record_sound_filename":      String,
}

// KindOf returns the Kind of the key. Unknown keys are strings.
func KindOf(key string) Kind {
	if k, ok := Known[key]; ok {
		return k
	}
	return String
}

// Setting is a single key and value.
type Setting struct {
	Key   string
	Value string

	b bool
	i int32
	f float32
}

// Kind of the Setting.
func (s Setting) Kind() Kind {
	return KindOf(s.Key)
}

func (s Setting) String() string {
	return fmt.Sprintf("%s::%s", s.Key, s.Value)
}

// NewSetting checks the value against the kind of the key.
func NewSetting(key string, value string) (Setting, error) {
	s := Setting{Key: key, Value: value}

	switch s.Kind() {
	case Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return Setting{}, curated.Errorf(BadValue, key, value, err)
		}
		s.b = b
	case Int:
		i, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return Setting{}, curated.Errorf(BadValue, key, value, err)
		}
		s.i = int32(i)
	case Float:
		f, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return Setting{}, curated.Errorf(BadValue, key, value, err)
		}
		s.f = float32(f)
	}

	return s, nil
}

// Settings is an ordered list of Setting values. Settings are applied in
// order so a later entry for a key wins over an earlier one.
type Settings []Setting

// Parse an options string.
func Parse(options string) (Settings, error) {
	var set Settings

	for _, p := range strings.Split(options, ";") {
		if strings.TrimSpace(p) == "" {
			continue
		}

		kv := strings.Split(p, "::")
		if len(kv) != 2 {
			return nil, curated.Errorf(Malformed, strings.TrimSpace(p))
		}

		key := strings.TrimSpace(kv[0])
		if key == "" {
			return nil, curated.Errorf(Malformed, strings.TrimSpace(p))
		}

		s, err := NewSetting(key, strings.TrimSpace(kv[1]))
		if err != nil {
			return nil, err
		}
		set = append(set, s)
	}

	return set, nil
}

// Lookup returns the most recent value for the key.
func (set Settings) Lookup(key string) (string, bool) {
	for i := len(set) - 1; i >= 0; i-- {
		if set[i].Key == key {
			return set[i].Value, true
		}
	}
	return "", false
}

// String returns the list in the same form accepted by Parse().
func (set Settings) String() string {
	s := make([]string, len(set))
	for i := range set {
		s[i] = set[i].String()
	}
	return strings.Join(s, "; ")
}

// Configurable is anything that has typed options setters. Both ale.ALE and
// ale.Game satisfy the interface.
type Configurable interface {
	SetString(key string, value string)
	SetBool(key string, value bool)
	SetInt(key string, value int32)
	SetFloat(key string, value float32)
}

// Apply every Setting using the setter for its Kind.
func (set Settings) Apply(c Configurable) {
	for _, s := range set {
		switch s.Kind() {
		case Bool:
			c.SetBool(s.Key, s.b)
		case Int:
			c.SetInt(s.Key, s.i)
		case Float:
			c.SetFloat(s.Key, s.f)
		default:
			c.SetString(s.Key, s.Value)
		}
	}
}
