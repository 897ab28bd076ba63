package main

import (
	"flag"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/shad0w-jo4n/libcpp-gc/gc"
	"github.com/shad0w-jo4n/libcpp-gc/internal/config"
	"github.com/shad0w-jo4n/libcpp-gc/internal/monitor"
	"github.com/shad0w-jo4n/libcpp-gc/internal/observability"
)

func main() {
	configPath := flag.String("config", "", "path to monitor config toml")
	flag.Parse()

	observability.InitLogger("gcmon")

	cfg := config.DefaultMonitorConfig()
	if *configPath != "" {
		loaded, err := config.LoadMonitorConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("failed to load monitor config")
		}
		cfg = loaded
		log.Info().Str("path", *configPath).Msg("loaded monitor config")
	}

	collector := gc.NewCollector()
	collector.SetInterval(cfg.SweepInterval)

	srv := monitor.Appear("gcmon", cfg.Addr, cfg.CorsOrigins, collector)
	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("monitor started")
		if err := srv.Serve(); err != nil {
			log.Error().Err(err).Msg("monitor stopped")
		}
	}()

	code := collector.Run(func() int {
		return runWorkload(collector, cfg)
	})

	stats := collector.Stats()
	log.Info().
		Int("tracked", stats.Tracked).
		Uint64("sweeps", stats.Sweeps).
		Uint64("reclaimed", stats.Reclaimed).
		Msg("workload finished")
	os.Exit(code)
}

type demoObject struct {
	worker int
	seq    int
}

// runWorkload allocates tracked objects from cfg.Workers goroutines,
// releasing most handles immediately and retaining every retain_every-th
// one until the end of the run scope.
func runWorkload(collector *gc.Collector, cfg config.MonitorConfig) int {
	var (
		mu       sync.Mutex
		retained []*gc.Handle[demoObject]
	)

	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < cfg.ObjectsPerWorker; i++ {
				h := gc.AllocFunc(collector, &demoObject{worker: worker, seq: i}, func(obj *demoObject) {
					log.Debug().Int("worker", obj.worker).Int("seq", obj.seq).Msg("object reclaimed")
				})
				if cfg.RetainEvery > 0 && i%cfg.RetainEvery == 0 {
					mu.Lock()
					retained = append(retained, h)
					mu.Unlock()
				} else {
					h.Release()
				}
				time.Sleep(time.Millisecond)
			}
		}(w)
	}
	wg.Wait()

	log.Info().Int("retained", len(retained)).Msg("workload allocations complete")
	for _, h := range retained {
		h.Release()
	}
	return 0
}
