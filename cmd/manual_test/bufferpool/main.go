package main

import (
	"flag"
	"log"
	"log/slog"

	"github.com/tuannm99/novapool/internal"
	"github.com/tuannm99/novapool/internal/bufferpool"
	"github.com/tuannm99/novapool/internal/storage"
)

// Manual smoke test: push pages through a tiny pool so evictions and
// write-backs actually happen, then verify the bytes round-tripped.
func main() {
	configPath := flag.String("config", "", "Path to yaml config (optional)")
	dataDir := flag.String("data-dir", "", "Override storage workdir")
	flag.Parse()

	cfg := internal.DefaultConfig()
	if *configPath != "" {
		loaded, err := internal.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if *dataDir != "" {
		cfg.Storage.Workdir = *dataDir
	}

	dm, err := storage.NewDiskManager(cfg.Storage.Workdir, cfg.Storage.PageSize)
	if err != nil {
		log.Fatalf("Failed to create disk manager: %v", err)
	}
	defer func() { _ = dm.Close() }()

	file, err := dm.Open("demo")
	if err != nil {
		log.Fatalf("Failed to open page file: %v", err)
	}

	capacity := 4 // small on purpose, to force evictions below
	policy := bufferpool.NewReplacer(cfg.Buffer.Policy, capacity)
	pool := bufferpool.NewPool(dm, cfg.Storage.PageSize, capacity, policy)

	slog.Info("pool ready",
		"workdir", cfg.Storage.Workdir,
		"page_size", cfg.Storage.PageSize,
		"capacity", capacity,
		"policy", cfg.Buffer.Policy)

	// Create pages, stamp each one, release them.
	var ids []bufferpool.PageID
	for i := 0; i < 10; i++ {
		frame, pid, err := pool.NewPage(file)
		if err != nil {
			log.Fatalf("NewPage failed: %v", err)
		}
		frame.Data()[0] = byte(i + 1)
		if !pool.UnpinPage(pid, true) {
			log.Fatalf("UnpinPage %v refused", pid)
		}
		ids = append(ids, pid)
	}
	slog.Info("created pages", "count", len(ids))

	// Re-fetch everything; anything evicted comes back from disk.
	for i, pid := range ids {
		frame, err := pool.FetchPage(pid)
		if err != nil {
			log.Fatalf("FetchPage %v failed: %v", pid, err)
		}
		if got := frame.Data()[0]; got != byte(i+1) {
			log.Fatalf("page %v: got stamp %d, want %d", pid, got, i+1)
		}
		pool.UnpinPage(pid, false)
	}
	slog.Info("all stamps verified after eviction round-trip")

	if err := pool.FlushFile(file); err != nil {
		log.Fatalf("FlushFile failed: %v", err)
	}
	if err := dm.Sync(file); err != nil {
		log.Fatalf("Sync failed: %v", err)
	}
	slog.Info("flushed", "file", file)
}
