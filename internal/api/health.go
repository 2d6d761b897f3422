package api

import (
	"net/http"
	"os"

	"support-chat/internal"

	"github.com/dgraph-io/badger/v4"
	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/process"
)

// Health reports the memory and CPU usage of the running process.
func Health(c *gin.Context) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": err.Error()})
		return
	}
	memInfo, err := p.MemoryInfo()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": err.Error()})
		return
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"pid":         p.Pid,
		"rss_bytes":   memInfo.RSS,
		"cpu_percent": cpuPercent,
	})
}

func Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Inspect dumps the raw transcript keys, ?prefix= narrows the listing.
func Inspect(db *badger.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := internal.Inspect(db, c.Query("prefix"), nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": rows})
	}
}
