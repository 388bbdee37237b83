package api

import (
	"encoding/json"
	"log"

	"github.com/gin-gonic/gin"
)

// BroadcastBatchComplete pushes a completion notice for a Gharqa or
// Munasakhot batch case over the WebSocket hub, mirroring the
// teacher's alert-broadcast pattern for long-running background work.
func BroadcastBatchComplete(wsHub *Hub, caseID, kind string) {
	payload := gin.H{
		"type":   "batch_complete",
		"caseId": caseID,
		"kind":   kind,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal batch-complete broadcast: %v", err)
		return
	}
	wsHub.Broadcast(data)
	log.Printf("[BATCH] %s case %s completed", kind, caseID)
}
