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

package ale

import (
	"github.com/jetsetilly/gopherale/curated"
	"github.com/jetsetilly/gopherale/engine"
)

// Options gives typed access to the engine configuration. It is embedded in
// both ALE and Game.
//
// Keys are passed to the engine as they are. What happens with an unknown
// key is decided by the engine.
type Options struct {
	in *instance
}

// instance returns the owned instance. panics if there isn't one.
func (o *Options) instance() *instance {
	if o.in == nil {
		panic(curated.Errorf(Consumed))
	}
	return o.in
}

func (o *Options) engine() engine.Engine {
	return o.instance().eng
}

// take moves the instance out. the Options can not be used afterwards.
func (o *Options) take() *instance {
	in := o.instance()
	o.in = nil
	return in
}

// release closes the instance if there is one.
func (o *Options) release() error {
	if o.in == nil {
		return nil
	}
	return o.take().close()
}

// GetString returns the value of the key as a string.
func (o *Options) GetString(key string) string {
	return o.engine().GetString(key)
}

// GetBool returns the value of the key as a bool.
func (o *Options) GetBool(key string) bool {
	return o.engine().GetBool(key)
}

// GetInt returns the value of the key as an int32.
func (o *Options) GetInt(key string) int32 {
	return o.engine().GetInt(key)
}

// GetFloat returns the value of the key as a float32.
func (o *Options) GetFloat(key string) float32 {
	return o.engine().GetFloat(key)
}

// SetString sets the key to a string value.
func (o *Options) SetString(key string, value string) {
	o.engine().SetString(key, value)
}

// SetBool sets the key to a bool value.
func (o *Options) SetBool(key string, value bool) {
	o.engine().SetBool(key, value)
}

// SetInt sets the key to an int32 value.
func (o *Options) SetInt(key string, value int32) {
	o.engine().SetInt(key, value)
}

// SetFloat sets the key to a float32 value.
func (o *Options) SetFloat(key string, value float32) {
	o.engine().SetFloat(key, value)
}
