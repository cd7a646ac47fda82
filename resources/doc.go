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

// Package resources contains functions to prepare paths for gbuffer
// resources, such as the preferences file and shader directories.
//
// The JoinPath() function returns the path to the resource, prepended with
// the base resource path. If a directory named ".gbuffer" exists in the
// current working directory then that is the base path (the "portable"
// location). Otherwise the base path is the "gbuffer" directory inside the
// user's configuration directory, as returned by os.UserConfigDir().
//
// On a modern Linux system, the path returned for the preferences file will
// be:
//
//	/home/user/.config/gbuffer/preferences
package resources
