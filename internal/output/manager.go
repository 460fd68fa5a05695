package output

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

type jobDisplay struct {
	ID         int
	Label      string
	Status     string
	Message    string
	Percent    float64 // negative until the first progress event
	Speed      string
	StreamTail []string
	Complete   bool
	StartTime  time.Time
	Updated    time.Time
}

type errorReport struct {
	Label string
	Err   error
	Time  time.Time
}

// Manager owns the live terminal display: one status line per job,
// a progress bar or stream tail underneath, redrawn in place on a
// ticker, with a summary once everything finishes.
type Manager struct {
	mu       sync.RWMutex
	jobs     map[int]*jobDisplay
	errors   []errorReport
	nextID   int
	numLines int
	maxTail  int
	tick     time.Duration
	doneCh   chan struct{}
	wg       sync.WaitGroup
}

func NewManager() *Manager {
	return &Manager{
		jobs:    make(map[int]*jobDisplay),
		maxTail: 4,
		tick:    300 * time.Millisecond,
		doneCh:  make(chan struct{}),
	}
}

func (m *Manager) Register(label string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	m.jobs[m.nextID] = &jobDisplay{
		ID:        m.nextID,
		Label:     label,
		Status:    "pending",
		Percent:   -1,
		StartTime: time.Now(),
		Updated:   time.Now(),
	}
	return m.nextID
}

func (m *Manager) SetStatus(id int, status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if job, ok := m.jobs[id]; ok {
		job.Status = status
		job.Updated = time.Now()
	}
}

func (m *Manager) SetMessage(id int, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if job, ok := m.jobs[id]; ok {
		job.Message = message
		job.Updated = time.Now()
	}
}

func (m *Manager) SetProgress(id int, percent float64, speed string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if job, ok := m.jobs[id]; ok {
		job.Percent = percent
		job.Speed = speed
		job.Updated = time.Now()
	}
}

func (m *Manager) AddStreamLine(id int, line string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if job, ok := m.jobs[id]; ok {
		job.StreamTail = append(job.StreamTail, line)
		if len(job.StreamTail) > m.maxTail {
			job.StreamTail = job.StreamTail[len(job.StreamTail)-m.maxTail:]
		}
		job.Updated = time.Now()
	}
}

func (m *Manager) Complete(id int, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if job, ok := m.jobs[id]; ok {
		job.StreamTail = nil
		job.Percent = 100
		job.Speed = ""
		if message == "" {
			message = fmt.Sprintf("Completed %s", job.Label)
		}
		job.Message = message
		job.Complete = true
		job.Status = "success"
		job.Updated = time.Now()
	}
}

func (m *Manager) ReportError(id int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if job, ok := m.jobs[id]; ok {
		job.StreamTail = nil
		job.Complete = true
		job.Status = "error"
		job.Message = fmt.Sprintf("Failed %s", job.Label)
		job.Updated = time.Now()
		m.errors = append(m.errors, errorReport{Label: job.Label, Err: err, Time: time.Now()})
	}
}

// FailureCount reports how many jobs ended in error, for the exit code.
func (m *Manager) FailureCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.errors)
}

func (m *Manager) statusIndicator(status string) string {
	switch status {
	case "success":
		return successStyle.Render(StyleSymbols["pass"])
	case "error":
		return errorStyle.Render(StyleSymbols["fail"])
	case "warning":
		return warningStyle.Render(StyleSymbols["warning"])
	case "pending":
		return pendingStyle.Render(StyleSymbols["pending"])
	default:
		return infoStyle.Render(StyleSymbols["bullet"])
	}
}

func (m *Manager) sortedJobs() []*jobDisplay {
	jobs := make([]*jobDisplay, 0, len(m.jobs))
	for _, job := range m.jobs {
		jobs = append(jobs, job)
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].ID < jobs[j].ID })
	return jobs
}

func (m *Manager) updateDisplay() {
	m.mu.RLock()
	defer m.mu.RUnlock()

	availableLines := getTerminalHeight() - 3
	if m.numLines > 0 {
		fmt.Printf("\033[%dA\033[J", m.numLines)
	}
	lineCount := 0
	for _, job := range m.sortedJobs() {
		if lineCount >= availableLines {
			break
		}
		elapsed := time.Since(job.StartTime).Round(time.Second)
		if job.Complete {
			elapsed = job.Updated.Sub(job.StartTime).Round(time.Second)
		}
		var styled string
		switch job.Status {
		case "success":
			styled = successStyle.Render(job.Message)
		case "error":
			styled = errorStyle.Render(job.Message)
		default:
			styled = pendingStyle.Render(job.Message)
		}
		fmt.Printf("  %s %s %s\n", m.statusIndicator(job.Status), debugStyle.Render(elapsed.String()), styled)
		lineCount++
		if job.Complete {
			continue
		}
		if job.Percent >= 0 && lineCount < availableLines {
			bar := RenderProgressBar(job.Percent, 30)
			if job.Speed != "" {
				bar += debugStyle.Render(fmt.Sprintf(" %s %s", StyleSymbols["bullet"], job.Speed))
			}
			fmt.Printf("%s%s\n", strings.Repeat(" ", 6), bar)
			lineCount++
		}
		for _, line := range job.StreamTail {
			if lineCount >= availableLines {
				break
			}
			fmt.Printf("%s%s\n", strings.Repeat(" ", 6), streamStyle.Render(line))
			lineCount++
		}
	}
	m.numLines = lineCount
}

func (m *Manager) StartDisplay() {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		ticker := time.NewTicker(m.tick)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.updateDisplay()
			case <-m.doneCh:
				m.updateDisplay()
				m.showSummary()
				return
			}
		}
	}()
}

func (m *Manager) StopDisplay() {
	close(m.doneCh)
	m.wg.Wait()
}

func (m *Manager) showSummary() {
	m.mu.RLock()
	defer m.mu.RUnlock()
	fmt.Println()
	var success, failures int
	for _, job := range m.jobs {
		switch job.Status {
		case "success":
			success++
		case "error":
			failures++
		}
	}
	fmt.Println("  " + successStyle.Render(fmt.Sprintf("Completed %d of %d", success, len(m.jobs))))
	if failures > 0 {
		fmt.Println("  " + errorStyle.Render(fmt.Sprintf("Failed %d of %d", failures, len(m.jobs))))
	}
	if len(m.errors) > 0 {
		fmt.Println()
		fmt.Println("  " + errorStyle.Bold(true).Render("Errors:"))
		for i, report := range m.errors {
			fmt.Printf("    %s %s %s\n",
				errorStyle.Render(fmt.Sprintf("%d.", i+1)),
				debugStyle.Render(fmt.Sprintf("[%s]", report.Time.Format("15:04:05"))),
				errorStyle.Render(report.Label))
			fmt.Printf("      %s\n", errorStyle.Render(fmt.Sprintf("Error: %v", report.Err)))
		}
	}
	fmt.Println()
}
