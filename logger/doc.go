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

// Package logger is the central log repository for gbuffer. Log entries are
// tagged with a short string naming the subsystem that created them. For
// example:
//
//	logger.Log(logger.Allow, "gbuffer", "allocated 2 targets (800x600)")
//	logger.Logf(logger.Allow, "gl32", "vendor: %s", vendor)
//
// Logging is gated by the Permission interface. Most callers will use the
// Allow value but a type that implements AllowLogging() can be used to
// suppress log entries depending on the state of the caller.
//
// Identical consecutive entries are folded into one entry with a repeat count.
// The number of entries kept in the central log is bounded and oldest entries
// are dropped first.
//
// The central log can be echoed to an io.Writer as entries are added with
// SetEcho(). Separate Logger instances can be created with NewLogger(), which
// is mainly useful for testing.
package logger
