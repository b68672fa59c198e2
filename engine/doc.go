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

// Package engine describes the capability surface of the emulator engine.
//
// The engine is an external collaborator. Everything that involves
// emulation, rendering or the contents of RAM happens behind the Engine
// interface. The ale package builds the ownership and lifecycle protocol on
// top of it.
//
// An engine implementation is made available by registering a Backend. The
// native backend (engine/native) binds to the ale_c library and is only
// compiled with the "ale" build tag. The dummy backend (engine/dummy) is a
// deterministic implementation in Go, used by the tests and for running
// without the native library. Backends register themselves when their
// package is imported:
//
//	import _ "github.com/jetsetilly/gopherale/engine/native"
//
// Fill functions (LegalActionSet(), Screen(), RAM() etc.) are always given a
// slice whose length is exactly the size reported by the corresponding size
// function. Implementations may assume this and must not write beyond the
// length of the slice.
package engine
