package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"crew-casino/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	writerMu  sync.RWMutex
	rawWriter io.Writer = os.Stdout
)

// Init configures the global zerolog logger. When cfg.File is set, log
// output goes to a size-capped file instead of stdout.
func Init(cfg config.LogConfig) {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var sink io.Writer = os.Stdout
	if path := strings.TrimSpace(cfg.File); path != "" {
		if fw, err := newSizeLimitedWriter(path, cfg.MaxMB); err == nil {
			sink = fw
		}
	}
	setWriter(sink)

	output := sink
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{Out: sink}
	}

	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(output).With().Timestamp().Logger()
	if cfg.SampleEvery > 1 {
		logger = logger.Sample(&zerolog.BasicSampler{N: uint32(cfg.SampleEvery)})
	}
	log.Logger = logger
}

// Writer returns the raw log sink, for collaborators that run their own
// formatting on top of it (request logging middleware).
func Writer() io.Writer {
	writerMu.RLock()
	defer writerMu.RUnlock()
	return rawWriter
}

func setWriter(w io.Writer) {
	writerMu.Lock()
	defer writerMu.Unlock()
	rawWriter = w
}
