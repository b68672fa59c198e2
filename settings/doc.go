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

// Package settings handles strings of engine options and the environment
// variables read by the gopherale command.
//
// An options string is a list of key/value pairs. The key and value are
// separated by a double colon and each pair is separated by a semi-colon:
//
//	random_seed::123; frame_skip::4; repeat_action_probability::0.25
//
// Whitespace around keys and values is ignored. Well known keys have a type
// and their values are checked when the string is parsed. Any other key is
// accepted and is given to the engine as a string.
package settings
