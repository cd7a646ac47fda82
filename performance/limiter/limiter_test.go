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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gbuffer/performance/limiter"
	"github.com/jetsetilly/gbuffer/test"
)

func TestLimiter(t *testing.T) {
	_, err := limiter.NewFPSLimiter(0)
	test.ExpectFailure(t, err)

	lim, err := limiter.NewFPSLimiter(1000)
	test.DemandSuccess(t, err)
	defer lim.Stop()

	test.ExpectEquality(t, lim.Limit(), 1000)
	lim.Wait()
	lim.Wait()

	lim.SetLimit(-1)
	test.ExpectEquality(t, lim.Limit(), 1000)
	lim.SetLimit(500)
	test.ExpectEquality(t, lim.Limit(), 500)
	lim.Wait()
}

func TestHasWaited(t *testing.T) {
	lim, err := limiter.NewFPSLimiter(10)
	test.DemandSuccess(t, err)
	defer lim.Stop()

	// the first tick is 100ms away
	test.ExpectFailure(t, lim.HasWaited())

	time.Sleep(150 * time.Millisecond)
	test.ExpectSuccess(t, lim.HasWaited())
}
