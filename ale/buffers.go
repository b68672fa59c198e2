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

// sized returns a slice of exactly n bytes. The slice shares storage with buf
// if buf has the capacity.
func sized(buf []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if cap(buf) < n {
		return make([]byte, n)
	}
	return buf[:n]
}

// ScreenDimensions returns the width and height of the screen in pixels.
func (g *Game) ScreenDimensions() (int, int) {
	eng := g.engine()
	return eng.ScreenWidth(), eng.ScreenHeight()
}

func (g *Game) screenSize() int {
	w, h := g.ScreenDimensions()
	return w * h
}

// Screen returns the palette indexed pixels of the current frame. The
// length is always width * height.
func (g *Game) Screen() []byte {
	return g.ScreenInBuf(nil)
}

// ScreenInBuf is the same as Screen() except that buf is used if it has
// sufficient capacity. The returned slice has a length of exactly width *
// height and every byte is written by the engine.
func (g *Game) ScreenInBuf(buf []byte) []byte {
	buf = sized(buf, g.screenSize())
	g.engine().Screen(buf)
	return buf
}

// ScreenRGB returns the current frame using the engine's RGB packing. The
// length is always width * height.
func (g *Game) ScreenRGB() []byte {
	return g.ScreenRGBInBuf(nil)
}

// ScreenRGBInBuf is the same as ScreenRGB() except that buf is used if it has
// sufficient capacity.
func (g *Game) ScreenRGBInBuf(buf []byte) []byte {
	buf = sized(buf, g.screenSize())
	g.engine().ScreenRGB(buf)
	return buf
}

// RAMSize returns the number of bytes of emulated RAM.
func (g *Game) RAMSize() int {
	return g.engine().RAMSize()
}

// RAM returns a copy of the emulated RAM. The length is always RAMSize().
func (g *Game) RAM() []byte {
	return g.RAMInBuf(nil)
}

// RAMInBuf is the same as RAM() except that buf is used if it has sufficient
// capacity.
func (g *Game) RAMInBuf(buf []byte) []byte {
	buf = sized(buf, g.RAMSize())
	g.engine().RAM(buf)
	return buf
}
