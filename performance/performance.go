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

package performance

import (
	"fmt"
	"io"
	"time"
)

// CalcRate takes the number of events and the duration over which they
// occurred and returns the number of events per second.
func CalcRate(num int, duration time.Duration) float64 {
	if duration <= 0 {
		return 0
	}
	return float64(num) / duration.Seconds()
}

// Check the performance of the frame function by calling it repeatedly for
// the specified duration. The rate at which the frame function is called is
// written to output.
//
// The frame function is run through RunProfiler() with the profile argument.
// Checking stops early if the frame function returns an error.
func Check(output io.Writer, profile Profile, duration time.Duration, frame func() error) error {
	if duration <= 0 {
		return fmt.Errorf("performance: duration must be positive (%v)", duration)
	}

	var num int
	var elapsed time.Duration

	runner := func() error {
		timesUp := time.NewTimer(duration)
		defer timesUp.Stop()

		start := time.Now()
		defer func() {
			elapsed = time.Since(start)
		}()

		for {
			select {
			case <-timesUp.C:
				return nil
			default:
			}

			if err := frame(); err != nil {
				return err
			}
			num++
		}
	}

	err := RunProfiler(profile, "performance", runner)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	output.Write([]byte(fmt.Sprintf("%.2f frames/s (%d frames in %.2f seconds)\n",
		CalcRate(num, elapsed), num, elapsed.Seconds())))

	return nil
}
