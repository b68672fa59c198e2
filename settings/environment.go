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
	"github.com/caarlos0/env/v11"
	"github.com/jetsetilly/gopherale/curated"
)

// EnvironmentFailed is the pattern for errors reading the environment.
const EnvironmentFailed = "settings: environment: %v"

// Environment is the configuration that can be given to the gopherale
// command through environment variables. Values from the command line take
// precedence.
type Environment struct {
	// extra engine options. applied before the options given on the command
	// line
	Options string `env:"GOPHERALE_OPTIONS"`

	// name of the engine backend
	Engine string `env:"GOPHERALE_ENGINE"`

	// name of the codec used for saved games
	Codec string `env:"GOPHERALE_CODEC" envDefault:"wire"`

	// directory where ROMs extracted from archives are placed
	ROMCache string `env:"GOPHERALE_ROMCACHE"`
}

// FromEnvironment reads the process environment.
func FromEnvironment() (Environment, error) {
	var e Environment
	if err := env.Parse(&e); err != nil {
		return Environment{}, curated.Errorf(EnvironmentFailed, err)
	}
	return e, nil
}

// FromMap is the same as FromEnvironment() but the variables are taken from
// the map.
func FromMap(vars map[string]string) (Environment, error) {
	var e Environment
	if err := env.ParseWithOptions(&e, env.Options{Environment: vars}); err != nil {
		return Environment{}, curated.Errorf(EnvironmentFailed, err)
	}
	return e, nil
}

// Settings parses the Options field.
func (e Environment) Settings() (Settings, error) {
	return Parse(e.Options)
}
