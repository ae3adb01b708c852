package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/launch-metrics-api/infrastructure/repository"
	"github.com/vfg2006/launch-metrics-api/internal/domain"
	"github.com/vfg2006/launch-metrics-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrJobNotFound = errors.New("job não encontrado")
	ErrJobRunning  = errors.New("job já em execução")
)

// JobFunc executa uma iteração do job e devolve os detalhes gravados no registro de saúde
type JobFunc func(ctx context.Context) (any, error)

// SleepFunc espera d ou até o contexto terminar
type SleepFunc func(ctx context.Context, d time.Duration) error

type Job struct {
	Name          string
	HealthService string
	Interval      time.Duration
	MaxRetries    int
	RetryDelay    time.Duration
	Timeout       time.Duration
	Run           JobFunc
}

// jobState guarda o estado de execução de um job. Protegido por Scheduler.mu.
type jobState struct {
	job             Job
	cronJob         *gocron.Job
	running         bool
	runs            int
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastStatus      domain.HealthStatus
	lastError       string
	lastAttempts    int
}

// runOutcome é o resultado final de uma rodada, depois de todas as tentativas
type runOutcome struct {
	details  any
	err      error
	attempts int
}

// Scheduler executa cada job em intervalo fixo contado a partir do fim da execução anterior.
// Falhas são repetidas com backoff linear e nunca derrubam o processo.
type Scheduler struct {
	cron   *gocron.Scheduler
	health repository.ServiceHealthRepository
	sleep  SleepFunc

	mu      sync.Mutex
	order   []string
	jobs    map[string]*jobState
	baseCtx context.Context
	cancel  context.CancelFunc
	started bool
	stopped bool
}

func New(health repository.ServiceHealthRepository, jobs ...Job) *Scheduler {
	s := &Scheduler{
		cron:    gocron.NewScheduler(time.UTC),
		health:  health,
		sleep:   sleepContext,
		jobs:    make(map[string]*jobState, len(jobs)),
		baseCtx: context.Background(),
	}

	for _, job := range jobs {
		s.order = append(s.order, job.Name)
		s.jobs[job.Name] = &jobState{job: normalizeJob(job)}
	}

	return s
}

// WithSleep troca a função de espera entre tentativas
func (s *Scheduler) WithSleep(sleep SleepFunc) *Scheduler {
	s.sleep = sleep
	return s
}

func normalizeJob(job Job) Job {
	if job.MaxRetries < 1 {
		job.MaxRetries = 1
	}
	if job.Interval <= 0 {
		job.Interval = time.Minute
	}
	if job.HealthService == "" {
		job.HealthService = job.Name
	}
	return job
}

// Start agenda a primeira execução de cada job imediatamente. O agendador para quando ctx termina.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}
	s.started = true
	s.baseCtx, s.cancel = context.WithCancel(ctx)
	s.mu.Unlock()

	s.cron.StartAsync()

	for _, name := range s.order {
		if err := s.schedule(name, 0); err != nil {
			s.Stop()
			return err
		}
	}

	logrus.WithField("jobs", s.order).Info("scheduler: agendador iniciado")

	go func() {
		<-s.baseCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop interrompe o agendamento e cancela as execuções em andamento
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.stopped || !s.started {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	cancel := s.cancel
	s.mu.Unlock()

	s.cron.Stop()
	if cancel != nil {
		cancel()
	}

	logrus.Info("scheduler: agendador parado")
}

// schedule arma uma execução única do job após delay. Cada execução agenda a próxima ao terminar.
func (s *Scheduler) schedule(name string, delay time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return nil
	}

	state, ok := s.jobs[name]
	if !ok {
		return ErrJobNotFound
	}

	if state.cronJob != nil {
		s.cron.RemoveByReference(state.cronJob)
		state.cronJob = nil
	}

	builder := s.cron.Every(state.job.Interval)
	if delay <= 0 {
		builder = builder.StartImmediately()
	} else {
		builder = builder.StartAt(time.Now().Add(delay))
	}

	cronJob, err := builder.LimitRunsTo(1).Tag(name).Do(func() {
		s.execute(s.context(), name, true)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar job %s: %w", name, err)
	}

	state.cronJob = cronJob
	return nil
}

func (s *Scheduler) context() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.baseCtx
}

// RunOnce executa uma rodada do job de forma síncrona, com retentativas e registro de saúde
func (s *Scheduler) RunOnce(ctx context.Context, name string) error {
	s.mu.Lock()
	_, ok := s.jobs[name]
	s.mu.Unlock()
	if !ok {
		return ErrJobNotFound
	}

	if !s.execute(ctx, name, false) {
		return ErrJobRunning
	}
	return nil
}

// TriggerManualRun dispara uma rodada em segundo plano, sem alterar o próximo agendamento
func (s *Scheduler) TriggerManualRun(name string) error {
	s.mu.Lock()
	state, ok := s.jobs[name]
	if !ok {
		s.mu.Unlock()
		return ErrJobNotFound
	}
	running := state.running
	s.mu.Unlock()

	if running {
		logrus.WithField("job", name).Info("scheduler: job já em andamento, ignorando solicitação manual")
		return ErrJobRunning
	}

	logrus.WithField("job", name).Info("scheduler: execução manual solicitada")
	go s.execute(s.context(), name, false)

	return nil
}

// execute roda uma rodada do job. Retorna false quando o job já estava em execução.
func (s *Scheduler) execute(ctx context.Context, name string, rearm bool) bool {
	s.mu.Lock()
	state := s.jobs[name]
	if state.running {
		s.mu.Unlock()
		logrus.WithField("job", name).Info("scheduler: job já em andamento, ignorando execução")
		if rearm {
			s.rearm(ctx, name)
		}
		return false
	}
	state.running = true
	state.lastStartedAt = time.Now()
	job := state.job
	s.mu.Unlock()

	outcome := s.runWithRetry(ctx, job)
	s.recordHealth(ctx, job, outcome)

	s.mu.Lock()
	state.running = false
	state.runs++
	state.lastCompletedAt = time.Now()
	state.lastAttempts = outcome.attempts
	state.lastError = ""
	state.lastStatus = domain.HealthStatusOK
	if outcome.err != nil {
		state.lastStatus = domain.HealthStatusError
		state.lastError = outcome.err.Error()
	}
	s.mu.Unlock()

	if rearm {
		s.rearm(ctx, name)
	}

	return true
}

func (s *Scheduler) rearm(ctx context.Context, name string) {
	if ctx.Err() != nil {
		return
	}

	s.mu.Lock()
	interval := s.jobs[name].job.Interval
	s.mu.Unlock()

	if err := s.schedule(name, interval); err != nil {
		logrus.WithError(err).WithField("job", name).Error("scheduler: erro ao reagendar job")
	}
}

// runWithRetry tenta até MaxRetries vezes, esperando RetryDelay*tentativa entre as falhas.
// A falha final é devolvida no resultado e não é propagada como panic.
func (s *Scheduler) runWithRetry(ctx context.Context, job Job) runOutcome {
	var lastErr error

	for attempt := 1; attempt <= job.MaxRetries; attempt++ {
		details, err := s.runAttempt(ctx, job)
		if err == nil {
			logrus.WithFields(logrus.Fields{"job": job.Name, "attempt": attempt}).Info("scheduler: job concluído com sucesso")
			return runOutcome{details: details, attempts: attempt}
		}

		lastErr = err
		logrus.WithError(err).WithFields(logrus.Fields{"job": job.Name, "attempt": attempt}).Error("scheduler: falha na execução do job")

		if attempt < job.MaxRetries {
			if err := s.sleep(ctx, job.RetryDelay*time.Duration(attempt)); err != nil {
				return runOutcome{err: lastErr, attempts: attempt}
			}
		}
	}

	return runOutcome{err: lastErr, attempts: job.MaxRetries}
}

// runAttempt executa uma tentativa com timeout próprio. Panics viram erro.
// O corpo roda no mesmo goroutine: a próxima tentativa só começa depois que ele retorna.
func (s *Scheduler) runAttempt(ctx context.Context, job Job) (details any, err error) {
	ctx, _ = log.WithCorrelationID(ctx)

	if job.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, job.Timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			details = nil
			err = fmt.Errorf("panic no job %s: %v", job.Name, r)
		}
	}()

	details, err = job.Run(ctx)
	if err == nil && ctx.Err() != nil {
		return nil, fmt.Errorf("job %s interrompido: %w", job.Name, ctx.Err())
	}

	return details, err
}

func (s *Scheduler) recordHealth(ctx context.Context, job Job, outcome runOutcome) {
	if s.health == nil {
		return
	}

	record := &domain.ServiceHealthRecord{
		Service: job.HealthService,
		Status:  domain.HealthStatusOK,
	}

	var payload any = outcome.details
	if outcome.err != nil {
		record.Status = domain.HealthStatusError
		payload = map[string]any{
			"error":    outcome.err.Error(),
			"attempts": outcome.attempts,
		}
	}

	details, err := json.Marshal(payload)
	if err != nil || payload == nil {
		details = []byte("{}")
	}
	record.Details = details

	// o registro precisa ser gravado mesmo quando a rodada terminou por cancelamento
	if err := s.health.Record(context.WithoutCancel(ctx), record); err != nil {
		logrus.WithError(err).WithField("job", job.Name).Error("scheduler: erro ao registrar saúde do serviço")
	}
}

// GetStatus retorna o estado atual de cada job
func (s *Scheduler) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobs := make(map[string]any, len(s.jobs))
	for _, name := range s.order {
		state := s.jobs[name]

		status := map[string]any{
			"health_service":    state.job.HealthService,
			"interval":          state.job.Interval.String(),
			"max_retries":       state.job.MaxRetries,
			"retry_delay":       state.job.RetryDelay.String(),
			"timeout":           state.job.Timeout.String(),
			"running":           state.running,
			"runs":              state.runs,
			"last_started_at":   state.lastStartedAt,
			"last_completed_at": state.lastCompletedAt,
			"last_status":       state.lastStatus,
			"last_attempts":     state.lastAttempts,
		}
		if state.lastError != "" {
			status["last_error"] = state.lastError
		}
		if state.cronJob != nil {
			status["next_run"] = state.cronJob.NextRun()
		}

		jobs[name] = status
	}

	return map[string]any{
		"started": s.started && !s.stopped,
		"jobs":    jobs,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
