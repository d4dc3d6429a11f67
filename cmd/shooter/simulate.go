package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-shooter/internal/config"
	"github.com/vovakirdan/arcade-shooter/internal/core"
	"github.com/vovakirdan/arcade-shooter/internal/games/shooter"
	"github.com/vovakirdan/arcade-shooter/internal/storage"
)

var (
	flagSimSeconds  float64
	flagSimDT       time.Duration
	flagSimLeft     bool
	flagSimRight    bool
	flagSimFire     bool
	flagSimWander   bool
	flagSimEndAfter time.Duration
	flagSimSave     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the shooter headless and print the outcome",
	Long: `Run the simulation without any frontend, holding a fixed set of keys
for every frame, and print the final state. With a fixed --seed the result is
reproducible.

Examples:
  shooter simulate --seconds 10 --fire
  shooter simulate --seconds 60 --fire --wander --seed 42
  shooter simulate --seconds 5 --right --end-after 3s`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	f := simulateCmd.Flags()
	f.Float64Var(&flagSimSeconds, "seconds", 10, "Simulated time in seconds")
	f.DurationVar(&flagSimDT, "dt", time.Second/60, "Elapsed time per frame")
	f.BoolVar(&flagSimLeft, "left", false, "Hold left")
	f.BoolVar(&flagSimRight, "right", false, "Hold right")
	f.BoolVar(&flagSimFire, "fire", false, "Hold fire")
	f.BoolVar(&flagSimWander, "wander", false, "Switch between left and right at random every half second")
	f.DurationVar(&flagSimEndAfter, "end-after", 0, "End the run after this much simulated time (0 = never)")
	f.BoolVar(&flagSimSave, "save", false, "Record the run in the scores database")
}

// simulation is the outcome of a headless run.
type simulation struct {
	Seed     int64
	Frames   int
	Hits     int
	Played   time.Duration
	Score    int
	Bullets  int
	Enemies  int
	Phase    shooter.Phase
	EndedAt  time.Duration // Zero if the run never ended
	Captions []shooter.Caption
}

// simulateOptions describes a headless run.
type simulateOptions struct {
	Duration time.Duration
	DT       time.Duration
	Hold     []core.Action
	Wander   bool
	EndAfter time.Duration
	Seed     int64
}

// simulate runs a session frame by frame with a fixed input pattern.
func simulate(cfg config.ShooterConfig, opts simulateOptions) simulation {
	s := shooter.NewSession(cfg, opts.Seed)
	rng := rand.New(rand.NewSource(opts.Seed))
	res := simulation{Seed: opts.Seed}

	var wander core.Action
	var clock, nextTurn time.Duration
	for clock < opts.Duration {
		if opts.EndAfter > 0 && clock >= opts.EndAfter && s.EndGame() {
			res.EndedAt = clock
		}

		in := core.InputOf(opts.Hold...)
		if opts.Wander {
			if clock >= nextTurn {
				wander = core.ActionLeft
				if rng.Intn(2) == 0 {
					wander = core.ActionRight
				}
				nextTurn += 500 * time.Millisecond
			}
			in.Set(wander)
		}

		if s.Phase() == shooter.PhasePlaying {
			res.Hits += len(s.Update(in, opts.DT))
			res.Played += opts.DT
		}
		clock += opts.DT
	}

	res.Frames = s.Frames()
	res.Score = s.Score()
	res.Bullets = s.Store().Count(shooter.KindBullet)
	res.Enemies = s.Store().Count(shooter.KindEnemy)
	res.Phase = s.Phase()
	res.Captions = s.Captions()
	return res
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if flagSimDT <= 0 {
		return fmt.Errorf("--dt must be positive, got %s", flagSimDT)
	}
	if flagSimSeconds < 0 {
		return fmt.Errorf("--seconds must not be negative, got %g", flagSimSeconds)
	}

	cfg, err := config.LoadShooter(flagConfig)
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var hold []core.Action
	if flagSimLeft {
		hold = append(hold, core.ActionLeft)
	}
	if flagSimRight {
		hold = append(hold, core.ActionRight)
	}
	if flagSimFire {
		hold = append(hold, core.ActionFire)
	}

	opts := simulateOptions{
		Duration: time.Duration(flagSimSeconds * float64(time.Second)),
		DT:       flagSimDT,
		Hold:     hold,
		Wander:   flagSimWander,
		EndAfter: flagSimEndAfter,
		Seed:     seed,
	}
	logger.Debug("simulating", "duration", opts.Duration, "dt", opts.DT, "hold", hold, "seed", seed)

	res := simulate(cfg, opts)
	printSimulation(cmd.OutOrStdout(), res)

	if flagSimSave && res.Score > 0 {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		_, err = store.SaveRun(storage.Run{
			GameID:   shooter.GameID,
			Score:    res.Score,
			Hits:     res.Hits,
			Frames:   res.Frames,
			Duration: res.Played,
			Seed:     res.Seed,
			Frontend: "simulate",
		})
		if err != nil {
			return err
		}
		logger.Info("run saved", "score", res.Score)
	}
	return nil
}

func printSimulation(w io.Writer, res simulation) {
	fmt.Fprintf(w, "seed:     %d\n", res.Seed)
	fmt.Fprintf(w, "frames:   %d\n", res.Frames)
	fmt.Fprintf(w, "played:   %s\n", res.Played)
	fmt.Fprintf(w, "score:    %d\n", res.Score)
	fmt.Fprintf(w, "hits:     %d\n", res.Hits)
	fmt.Fprintf(w, "bullets:  %d\n", res.Bullets)
	fmt.Fprintf(w, "enemies:  %d\n", res.Enemies)
	fmt.Fprintf(w, "phase:    %s\n", res.Phase)
	if res.EndedAt > 0 {
		fmt.Fprintf(w, "ended at: %s\n", res.EndedAt)
	}
	for _, c := range res.Captions {
		fmt.Fprintf(w, "caption:  %q\n", c.Text)
	}
}
