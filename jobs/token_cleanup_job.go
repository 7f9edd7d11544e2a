package jobs

import (
	"log"
	"time"

	"lawfirm-server/services"
)

// TokenCleanupJob purges expired and revoked refresh tokens so the
// sessions table does not grow without bound.
type TokenCleanupJob struct {
	stopChan chan bool
}

// NewTokenCleanupJob creates a new token cleanup job
func NewTokenCleanupJob() *TokenCleanupJob {
	return &TokenCleanupJob{
		stopChan: make(chan bool),
	}
}

// Start begins the cleanup job
func (j *TokenCleanupJob) Start() {
	go j.run()
	log.Println("🚀 Token cleanup job started")
}

// Stop stops the cleanup job
func (j *TokenCleanupJob) Stop() {
	j.stopChan <- true
	log.Println("🛑 Token cleanup job stopped")
}

// run executes the cleanup job on a fixed interval
func (j *TokenCleanupJob) run() {
	ticker := time.NewTicker(6 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.cleanup()
		case <-j.stopChan:
			return
		}
	}
}

// cleanup removes stale refresh tokens
func (j *TokenCleanupJob) cleanup() {
	jwtService := services.NewJWTService()
	if err := jwtService.CleanupExpiredTokens(); err != nil {
		log.Printf("❌ Token cleanup failed: %v", err)
	}
}
