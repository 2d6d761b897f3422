package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"support-chat/facade"
	"support-chat/internal/api"
	"support-chat/moderation"
	"support-chat/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/gin-gonic/gin"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type BaseHTTPSuite struct {
	suite.Suite
	Config Config
	client *http.Client
	server *httptest.Server
	db     *badger.DB
}

// SetupSuite loads the environment configuration and starts a server when none is targeted
func (s *BaseHTTPSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	s.client = &http.Client{Timeout: 10 * time.Second}

	if s.Config.BaseURL != "" {
		return
	}
	gin.SetMode(gin.TestMode)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	s.db, err = repositories.OpenInMemory()
	s.Require().NoError(err)
	chatFacade := facade.NewChatFacade(log, repositories.NewRepository(), repositories.NewTranscriptRepository(s.db, log, nil))
	handler := api.NewChatHandler(chatFacade, log, moderation.DefaultStepOptions(), []string{moderation.SpamStep, moderation.ProfanityStep})
	s.server = httptest.NewServer(api.New(handler, s.db))
	s.Config.BaseURL = s.server.URL
}

func (s *BaseHTTPSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
	if s.db != nil {
		_ = s.db.Close()
	}
}

// Step prints a colorized header before running fn as a named sub-test
func (s *BaseHTTPSuite) Step(name string, fn func()) {
	s.Run(name, func() {
		header := fmt.Sprintf("  ====== %s ======", name)
		if s.Config.Colours {
			header = color.New(color.BgBlack, color.FgGreen).Render(header)
		}
		s.T().Log(header)
		fn()
	})
}

// Call sends body as JSON and decodes the JSON answer into out when it is not nil
func (s *BaseHTTPSuite) Call(method, path string, body any, out any) int {
	var reader io.Reader
	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	request, err := http.NewRequest(method, strings.TrimSuffix(s.Config.BaseURL, "/")+path, reader)
	s.Require().NoError(err)
	request.Header.Set("Content-Type", "application/json")

	start := time.Now()
	response, err := s.client.Do(request)
	s.Require().NoError(err, "Failed to reach "+s.Config.BaseURL)
	defer response.Body.Close()
	answer, err := io.ReadAll(response.Body)
	s.Require().NoError(err)

	logBuilder := strings.Builder{}
	fmt.Fprintf(&logBuilder, "HTTP %s %s [%d] in %v", method, path, response.StatusCode, time.Since(start))
	if s.Config.DebugJSON {
		fmt.Fprintf(&logBuilder, "\nREQUEST:\n%s\nRESPONSE:\n%s", raw, answer)
	}
	s.T().Log(logBuilder.String())

	if out != nil {
		s.Require().NoError(json.Unmarshal(answer, out))
	}
	return response.StatusCode
}
