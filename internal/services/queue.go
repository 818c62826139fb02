package services

import (
	"context"
	"encoding/json"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"yugayatra/internship-portal/internal/models"
	"yugayatra/internship-portal/internal/repositories"
)

// AnalysisJob is a transient queue entry. Its outcome is persisted via the
// application record; the job itself never is.
type AnalysisJob struct {
	ID            uuid.UUID
	ApplicationID string
	FilePath      string
	CandidateInfo CandidateInfo
}

type QueueStatus struct {
	QueueLength int
	Processing  bool
	IsRunning   bool
}

// workerState is mutated only by Tick; the mutex exists because AddJob and
// GetStatus read queue state from other goroutines.
type workerState int

const (
	workerIdle workerState = iota
	workerProcessing
)

// AnalysisQueue serializes resume analysis: one poller, one job at a time.
// Sequential processing keeps the rate-sensitive AI calls tame and rules out
// concurrent writes to the same application row.
type AnalysisQueue interface {
	Start()
	Stop()
	Tick()
	AddJob(job AnalysisJob)
	ClearQueue()
	GetStatus() QueueStatus
	QueueResumeAnalysis(applicationID, filePath string, info CandidateInfo)
	GetAnalysisStatus(applicationID string) (models.AnalysisStatus, error)
	RetriggerAnalysis(applicationID string) error
}

type analysisQueue struct {
	appRepo      repositories.ApplicationRepository
	analyzer     AnalyzerService
	storage      StorageService
	metrics      *QueueMetrics
	pollInterval time.Duration

	mu      sync.Mutex
	jobs    []AnalysisJob
	state   workerState
	running bool

	stopChan chan struct{}
	wg       sync.WaitGroup
}

func NewAnalysisQueue(
	appRepo repositories.ApplicationRepository,
	analyzer AnalyzerService,
	storage StorageService,
	metrics *QueueMetrics,
	pollInterval time.Duration,
) AnalysisQueue {
	if pollInterval <= 0 {
		pollInterval = 5 * time.Second
	}

	return &analysisQueue{
		appRepo:      appRepo,
		analyzer:     analyzer,
		storage:      storage,
		metrics:      metrics,
		pollInterval: pollInterval,
	}
}

// Start launches the polling loop. Safe to call once per queue.
func (q *analysisQueue) Start() {
	q.mu.Lock()
	if q.running {
		q.mu.Unlock()
		return
	}
	q.running = true
	q.stopChan = make(chan struct{})
	q.mu.Unlock()

	q.wg.Add(1)
	go q.run()

	log.Println("✅ AI analysis queue: background processing started")
}

func (q *analysisQueue) run() {
	defer q.wg.Done()

	ticker := time.NewTicker(q.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-q.stopChan:
			return
		case <-ticker.C:
			q.Tick()
		}
	}
}

// Stop halts the poller. The in-flight job, if any, finishes first.
func (q *analysisQueue) Stop() {
	q.mu.Lock()
	if !q.running {
		q.mu.Unlock()
		return
	}
	q.mu.Unlock()

	close(q.stopChan)
	q.wg.Wait()

	q.mu.Lock()
	q.running = false
	q.mu.Unlock()

	log.Println("🛑 AI analysis queue: background processing stopped")
}

// AddJob appends a job and synchronously marks the application as processing;
// the persisted status means "accepted for work", not "currently executing".
func (q *analysisQueue) AddJob(job AnalysisJob) {
	log.Printf("📥 Adding AI analysis job %s for application: %s\n", job.ID, job.ApplicationID)

	q.mu.Lock()
	q.jobs = append(q.jobs, job)
	depth := len(q.jobs)
	q.mu.Unlock()

	q.metrics.observeDepth(depth)

	if err := q.appRepo.UpdateAnalysisStatus(job.ApplicationID, models.AnalysisProcessing); err != nil {
		// The job stays queued; the status row catches up on write-back.
		log.Printf("⚠️  Failed to mark application %s as processing: %v\n", job.ApplicationID, err)
	}
}

// Tick dequeues and fully processes at most one job. The public surface
// exists so tests can drive the queue without real timers.
func (q *analysisQueue) Tick() {
	q.mu.Lock()
	if q.state == workerProcessing || len(q.jobs) == 0 {
		q.mu.Unlock()
		return
	}
	job := q.jobs[0]
	q.jobs = q.jobs[1:]
	q.state = workerProcessing
	depth := len(q.jobs)
	q.mu.Unlock()

	q.metrics.observeDepth(depth)

	defer func() {
		q.mu.Lock()
		q.state = workerIdle
		q.mu.Unlock()
	}()

	started := time.Now()
	log.Printf("⚙️  Processing AI analysis for application: %s\n", job.ApplicationID)

	result := q.performAnalysis(job)

	if err := q.storeResults(job.ApplicationID, result); err != nil {
		log.Printf("❌ Failed to store analysis results for application %s: %v\n", job.ApplicationID, err)
		q.metrics.observeJob("failed", time.Since(started).Seconds())
		return
	}

	q.metrics.observeJob("completed", time.Since(started).Seconds())
	log.Printf("✅ AI analysis completed for application: %s, Score: %d\n", job.ApplicationID, result.Score)
}

// performAnalysis never lets a failure escape; the queue must survive any
// individual job.
func (q *analysisQueue) performAnalysis(job AnalysisJob) (result *AIAnalysisResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ Unexpected panic during analysis of application %s: %v\n", job.ApplicationID, r)
			result = CreateFallbackAnalysis(job.CandidateInfo)
		}
	}()

	fullPath := ""
	if job.FilePath != "" {
		fullPath = q.storage.GetFilePath(filepath.Base(job.FilePath))
	}

	result = q.analyzer.AnalyzeResumeFromFile(context.Background(), fullPath, job.CandidateInfo)

	if result == nil || !result.Success {
		log.Printf("⚠️  Analysis unusable for application %s, substituting fallback\n", job.ApplicationID)
		result = CreateFallbackAnalysis(job.CandidateInfo)
	}

	return result
}

// storeResults is the one genuinely fatal step: a persistence error marks the
// application failed and is not retried. Manual re-trigger is the recovery
// path.
func (q *analysisQueue) storeResults(applicationID string, result *AIAnalysisResult) error {
	strengths, err := json.Marshal(result.Strengths)
	if err != nil {
		q.markFailed(applicationID)
		return err
	}

	weaknesses, err := json.Marshal(result.Weaknesses)
	if err != nil {
		q.markFailed(applicationID)
		return err
	}

	err = q.appRepo.UpdateAnalysisResult(applicationID, &repositories.AnalysisUpdateData{
		Score:      result.Score,
		Strengths:  string(strengths),
		Weaknesses: string(weaknesses),
		Prediction: result.Prediction,
	})
	if err != nil {
		q.markFailed(applicationID)
		return err
	}

	return nil
}

func (q *analysisQueue) markFailed(applicationID string) {
	if err := q.appRepo.UpdateAnalysisStatus(applicationID, models.AnalysisFailed); err != nil {
		log.Printf("⚠️  Failed to mark application %s as failed: %v\n", applicationID, err)
	}
}

func (q *analysisQueue) ClearQueue() {
	q.mu.Lock()
	q.jobs = nil
	q.mu.Unlock()

	q.metrics.observeDepth(0)
	log.Println("🧹 AI analysis queue: queue cleared")
}

func (q *analysisQueue) GetStatus() QueueStatus {
	q.mu.Lock()
	defer q.mu.Unlock()

	return QueueStatus{
		QueueLength: len(q.jobs),
		Processing:  q.state == workerProcessing,
		IsRunning:   q.running,
	}
}

// QueueResumeAnalysis is the entry point for the application-submission
// endpoint: one call per newly created application, with or without a resume.
func (q *analysisQueue) QueueResumeAnalysis(applicationID, filePath string, info CandidateInfo) {
	q.AddJob(AnalysisJob{
		ID:            uuid.New(),
		ApplicationID: applicationID,
		FilePath:      filePath,
		CandidateInfo: info,
	})
}

func (q *analysisQueue) GetAnalysisStatus(applicationID string) (models.AnalysisStatus, error) {
	return q.appRepo.GetAnalysisStatus(applicationID)
}

// RetriggerAnalysis rebuilds a job from the stored application record and
// enqueues it again; operational recovery for stuck or failed jobs.
func (q *analysisQueue) RetriggerAnalysis(applicationID string) error {
	app, err := q.appRepo.FindByID(applicationID)
	if err != nil {
		return err
	}

	if app.ResumeURL == nil || *app.ResumeURL == "" {
		return repositories.ErrApplicationNotFound
	}

	var skills []string
	if app.Skills != "" {
		if err := json.Unmarshal([]byte(app.Skills), &skills); err != nil {
			log.Printf("⚠️  Failed to parse stored skills for application %s: %v\n", applicationID, err)
			skills = nil
		}
	}

	q.QueueResumeAnalysis(applicationID, *app.ResumeURL, CandidateInfo{
		Name:           app.Name,
		College:        app.College,
		Specialization: app.Specialization,
		CGPA:           app.CGPA,
		Skills:         skills,
		Experience:     app.Experience,
	})

	log.Printf("🔁 Re-triggered analysis for application: %s\n", applicationID)
	return nil
}
