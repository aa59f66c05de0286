package prefetch

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/air_crash_atlas/internal/observability"
	"github.com/shenikar/air_crash_atlas/internal/weather"
	"github.com/sirupsen/logrus"
)

const popTimeout = 2 * time.Second

// Worker - структура для обработки очереди прогрева кеша погоды
type Worker struct {
	redisClient *redis.Client
	provider    weather.Provider
	metrics     *observability.Metrics
	logger      *logrus.Logger
	jobTimeout  time.Duration
	done        chan struct{}
}

// NewWorker создает новый Worker. provider должен писать результат в кеш.
func NewWorker(redisClient *redis.Client, provider weather.Provider, metrics *observability.Metrics, logger *logrus.Logger, jobTimeout time.Duration) *Worker {
	return &Worker{
		redisClient: redisClient,
		provider:    provider,
		metrics:     metrics,
		logger:      logger,
		jobTimeout:  jobTimeout,
		done:        make(chan struct{}),
	}
}

// Done закрывается, когда горутина воркера завершилась
func (w *Worker) Done() <-chan struct{} {
	return w.done
}

// Start запускает горутину для обработки очереди; остановка - через отмену ctx
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting weather prefetch worker...")
	go func() {
		defer close(w.done)
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping weather prefetch worker.")
				return
			default:
				// BRPOP с таймаутом, чтобы регулярно проверять ctx
				result, err := w.redisClient.BRPop(ctx, popTimeout, queueKey).Result()
				if err != nil {
					if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop prefetch job from Redis")
					select {
					case <-ctx.Done():
					case <-time.After(popTimeout):
					}
					continue
				}

				// result[0] - ключ, result[1] - значение
				var job Job
				if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal prefetch job from Redis")
					continue
				}

				w.process(ctx, job)
			}
		}
	}()
}

// process выполняет одну задачу. Повторов нет: неудачная задача логируется и отбрасывается.
func (w *Worker) process(ctx context.Context, job Job) {
	log := w.logger.WithFields(logrus.Fields{
		"job_id":    job.ID,
		"record_id": job.RecordID,
	})
	log.Debug("Processing prefetch job...")

	jobCtx, cancel := context.WithTimeout(ctx, w.jobTimeout)
	defer cancel()

	if _, err := w.provider.Current(jobCtx, job.Latitude, job.Longitude); err != nil {
		w.metrics.PrefetchJobs.WithLabelValues("failed").Inc()
		log.WithError(err).Warn("Weather prefetch failed")
		return
	}
	w.metrics.PrefetchJobs.WithLabelValues("done").Inc()
	log.Debug("Weather prefetched")
}
