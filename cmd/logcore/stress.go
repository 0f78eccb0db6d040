// FILE: lixenwraith/logcore/cmd/logcore/stress.go
package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/logcore"
)

var stressLevels = []logcore.Level{
	logcore.LevelDebug,
	logcore.LevelInfo,
	logcore.LevelWarning,
}

// countingSink counts delivered lines and optionally slows the drain goroutine down
type countingSink struct {
	lines atomic.Uint64
	bytes atomic.Uint64
	delay time.Duration
}

func (s *countingSink) Write(p []byte) (int, error) {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	s.lines.Add(1)
	s.bytes.Add(uint64(len(p)))
	return len(p), nil
}

func generateRandomMessage(rng *rand.Rand, size int) string {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 "
	var sb strings.Builder
	sb.Grow(size)
	for i := 0; i < size; i++ {
		sb.WriteByte(chars[rng.Intn(len(chars))])
	}
	return sb.String()
}

func newStressCommand(loadConfig func() (*logcore.Config, error)) *cobra.Command {
	var (
		producers  int
		records    int
		capacity   int64
		maxMsgSize int
		sinkDelay  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Run concurrent producers against a core and report its counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			if producers < 1 || records < 1 || maxMsgSize < 1 {
				return fmt.Errorf("producers, records and max-message must be positive")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			cfg.DefaultSink = logcore.SinkNone
			cfg.FilePath = ""
			cfg.HeartbeatIntervalS = 0
			if capacity > 0 {
				cfg.QueueCapacity = capacity
			}

			sink := &countingSink{delay: sinkDelay}
			core, err := logcore.NewBuilder().
				FromConfig(cfg).
				Sink(sink, logcore.LevelTrace, logcore.StandardFormatter).
				Build()
			if err != nil {
				return err
			}
			if err := core.Start(); err != nil {
				return err
			}

			start := time.Now()
			var wg sync.WaitGroup
			for i := 0; i < producers; i++ {
				wg.Add(1)
				go func(id int) {
					defer wg.Done()
					rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(id)))
					p := core.Producer("producer-" + strconv.Itoa(id))
					for seq := 0; seq < records; seq++ {
						level := stressLevels[rng.Intn(len(stressLevels))]
						msg := generateRandomMessage(rng, rng.Intn(maxMsgSize)+1)
						p.Logf(level, "seq=%d %s", seq, msg)
					}
				}(i)
			}
			wg.Wait()
			produced := time.Since(start)

			if err := core.Finish(); err != nil {
				return err
			}
			elapsed := time.Since(start)

			st := core.Stats()
			total := uint64(producers * records)
			rows := [][]string{
				{"producers", strconv.Itoa(producers)},
				{"records submitted", strconv.FormatUint(total, 10)},
				{"queue capacity", strconv.Itoa(st.QueueCap)},
				{"enqueued", strconv.FormatUint(st.Enqueued, 10)},
				{"evicted", strconv.FormatUint(st.Evicted, 10)},
				{"delivered", strconv.FormatUint(sink.lines.Load(), 10)},
				{"bytes", strconv.FormatUint(sink.bytes.Load(), 10)},
				{"sink errors", strconv.FormatUint(st.SinkErrors, 10)},
				{"produce time", produced.Round(time.Microsecond).String()},
				{"total time", elapsed.Round(time.Microsecond).String()},
				{"records/s", fmt.Sprintf("%.0f", float64(total)/elapsed.Seconds())},
			}
			fmt.Fprint(cmd.OutOrStdout(), renderTable([]string{"Metric", "Value"}, rows, []columnAlignment{alignLeft, alignRight}))
			return nil
		},
	}

	cmd.Flags().IntVar(&producers, "producers", 8, "Number of concurrent producer goroutines")
	cmd.Flags().IntVar(&records, "records", 10000, "Records per producer")
	cmd.Flags().Int64Var(&capacity, "capacity", 0, "Queue capacity override (0 keeps the configured value)")
	cmd.Flags().IntVar(&maxMsgSize, "max-message", 256, "Maximum random message size")
	cmd.Flags().DurationVar(&sinkDelay, "sink-delay", 0, "Artificial delay per delivered record, forces eviction")

	return cmd
}
