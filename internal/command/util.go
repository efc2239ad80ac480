package command

import (
	"context"
	"errors"
	"io"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/term"

	"github.com/vcplatform/marketplace/internal/infrastructure/config"
	mongodb "github.com/vcplatform/marketplace/internal/infrastructure/db/mongo"
	redisdb "github.com/vcplatform/marketplace/internal/infrastructure/db/redis"
	"github.com/vcplatform/marketplace/pkg/logger"
)

type configKey struct{}

func loadConfig(ctx context.Context) (*config.Config, zerolog.Logger, error) {
	cfg, ok := ctx.Value(configKey{}).(*config.Config)
	if !ok {
		return nil, zerolog.Nop(), errors.New("configuration was not loaded")
	}
	return cfg, logger.Get(), nil
}

// connections holds the backing stores a command opened. Redis is optional.
type connections struct {
	mongo *mongo.Client
	db    *mongo.Database
	redis *redis.Client
}

func connect(ctx context.Context, cfg *config.Config, withRedis bool) (*connections, error) {
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return nil, err
	}
	conns := &connections{mongo: client, db: db}
	if !withRedis {
		return conns, nil
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, errors.Join(err, client.Disconnect(context.WithoutCancel(ctx)))
	}
	conns.redis = rdb
	return conns, nil
}

func (c *connections) Close(ctx context.Context) error {
	var errs []error
	if c.redis != nil {
		errs = append(errs, c.redis.Close())
	}
	errs = append(errs, c.mongo.Disconnect(context.WithoutCancel(ctx)))
	return errors.Join(errs...)
}

func prompt(prompt string, mask bool) ([]byte, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		if _, err := os.Stderr.WriteString(prompt); err != nil {
			return nil, err
		}
	}
	line, err := readLine(os.Stdin, mask)
	if mask && term.IsTerminal(int(os.Stdin.Fd())) {
		_, _ = os.Stderr.WriteString("\n")
	}
	return line, err
}

// readLine reads a single line from stdin, hiding input when mask is set and
// stdin is a terminal.
func readLine(stdin *os.File, mask bool) ([]byte, error) {
	if mask && term.IsTerminal(int(stdin.Fd())) {
		return term.ReadPassword(int(stdin.Fd()))
	}
	return scanLine(stdin)
}

func scanLine(r io.Reader) ([]byte, error) {
	var buf [1]byte
	var ret []byte

	for {
		n, err := r.Read(buf[:])
		if n > 0 {
			switch buf[0] {
			case '\b':
				if len(ret) > 0 {
					ret = ret[:len(ret)-1]
				}
			case '\n':
				if runtime.GOOS != "windows" {
					return ret, nil
				}
			case '\r':
				if runtime.GOOS == "windows" {
					return ret, nil
				}
			default:
				ret = append(ret, buf[0])
			}
			continue
		}
		if err != nil {
			if errors.Is(err, io.EOF) && len(ret) > 0 {
				return ret, nil
			}
			return ret, err
		}
	}
}

func version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown-dev"
	}
	ver := "unknown"
	dirty := false
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			ver = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if dirty {
		ver += "-dev"
	}
	return ver
}
