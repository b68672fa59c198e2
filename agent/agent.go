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

package agent

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/jetsetilly/gopherale/ale"
	"github.com/jetsetilly/gopherale/curated"
	"github.com/jetsetilly/gopherale/digest"
	"github.com/jetsetilly/gopherale/logger"
)

// Agent defines the functions that all agents must implement.
type Agent interface {
	AgentID() string

	// Choose the next action for the Game. The Game should not be changed
	// by the agent.
	Choose(g *ale.Game) ale.Action
}

// Random chooses uniformly from the minimal action set of the game.
type Random struct {
	rng     *rand.Rand
	seed    uint64
	actions []ale.Action
}

// NewRandom creates a Random agent. Two agents with the same seed choose the
// same actions for the same game.
func NewRandom(seed uint64) *Random {
	return &Random{
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seed: seed,
	}
}

// AgentID implements the Agent interface.
func (r *Random) AgentID() string {
	return fmt.Sprintf("random (seed %d)", r.seed)
}

// Choose implements the Agent interface.
func (r *Random) Choose(g *ale.Game) ale.Action {
	if r.actions == nil {
		r.actions = g.MinimalActionSet()
		if len(r.actions) == 0 {
			r.actions = []ale.Action{ale.Noop}
		}
	}
	return r.actions[r.rng.IntN(len(r.actions))]
}

// Fixed cycles through a list of actions.
type Fixed struct {
	actions []ale.Action
	next    int
}

// NewFixed creates a Fixed agent. With no actions the agent always chooses
// Noop.
func NewFixed(actions ...ale.Action) *Fixed {
	if len(actions) == 0 {
		actions = []ale.Action{ale.Noop}
	}
	return &Fixed{actions: actions}
}

// AgentID implements the Agent interface.
func (f *Fixed) AgentID() string {
	return fmt.Sprintf("fixed (%d actions)", len(f.actions))
}

// Choose implements the Agent interface.
func (f *Fixed) Choose(_ *ale.Game) ale.Action {
	a := f.actions[f.next]
	f.next = (f.next + 1) % len(f.actions)
	return a
}

// Episode is the result of playing a single episode.
type Episode struct {
	Reward int64
	Frames int32
	Lives  int32

	// chained digest of every observation in the episode
	Digest string

	// the episode was stopped by the step limit rather than by the game
	Truncated bool
}

func (e Episode) String() string {
	s := fmt.Sprintf("reward %d in %d frames [%s]", e.Reward, e.Frames, e.Digest)
	if e.Truncated {
		s = fmt.Sprintf("%s (truncated)", s)
	}
	return s
}

// Sentinal error patterns used by Play().
const (
	Cancelled = "agent: play cancelled: %v"
	Negative  = "agent: %s cannot be negative (%d)"
)

// Play runs the agent for the number of episodes. The game is reset before
// every episode except the first, unless the first episode is already over.
//
// An episode ends when the game is over or after maxSteps calls to Act(). A
// maxSteps value of zero means that there is no limit. Negative values for
// episodes or maxSteps are an error and nothing is played.
//
// The results of the completed episodes are returned even if the context is
// cancelled.
func Play(ctx context.Context, g *ale.Game, a Agent, episodes int, maxSteps int) ([]Episode, error) {
	if episodes < 0 {
		return nil, curated.Errorf(Negative, "episodes", episodes)
	}
	if maxSteps < 0 {
		return nil, curated.Errorf(Negative, "maxSteps", maxSteps)
	}

	results := make([]Episode, 0, episodes)
	dig := digest.NewObservation()

	for ep := range episodes {
		if ep > 0 || g.IsOver() {
			g.Reset()
		}
		dig.Reset()

		var res Episode
		for steps := 0; !g.IsOver(); steps++ {
			if maxSteps > 0 && steps >= maxSteps {
				res.Truncated = true
				break
			}

			if steps%256 == 0 {
				if err := ctx.Err(); err != nil {
					return results, curated.Errorf(Cancelled, err)
				}
			}

			res.Reward += int64(g.Act(a.Choose(g)))
			dig.AddGame(g)
		}

		res.Frames = g.EpisodeFrameNumber()
		res.Lives = g.Lives()
		res.Digest = dig.String()
		results = append(results, res)

		logger.Logf(logger.Allow, "agent", "%s: episode %d: %s", a.AgentID(), ep, res)
	}

	return results, nil
}
