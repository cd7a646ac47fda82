// This file is part of Gbuffer.
//
// Gbuffer is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gbuffer is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gbuffer.  If not, see <https://www.gnu.org/licenses/>.

// Package prefs facilitates the storage of preferential values in the
// filesystem.
//
// The Disk type handles the saving and loading of values. Values are added
// with Disk.Add() using a key that identifies the value in the prefs file.
// Keys are conventionally namespaced with a dot:
//
//	dsk, _ := prefs.NewDisk(pth)
//	var depth prefs.Bool
//	_ = dsk.Add("gbuffer.depth", &depth)
//	_ = dsk.Load(true)
//
// Many Disk instances can share the same prefs file. Saving one Disk instance
// does not clobber the values stored by another.
//
// Values can be overridden for the current run of the program with the command
// line stack. A prefs string of the form "key::value; key::value" is pushed
// with PushCommandLineStack() and values are consumed by the next call to
// Disk.Load().
package prefs
