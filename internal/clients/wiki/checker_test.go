package wiki_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/clients/wiki"
)

type CheckerTestSuite struct {
	suite.Suite
	server    *httptest.Server
	checker   *wiki.HTTPChecker
	userAgent string
	ctx       context.Context
}

func TestCheckerSuite(t *testing.T) {
	suite.Run(t, new(CheckerTestSuite))
}

func (s *CheckerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.userAgent = r.Header.Get("User-Agent")
		switch r.URL.Path {
		case "/spell:eldritch-blast":
			_, _ = w.Write([]byte("<html>Eldritch Blast</html>"))
		case "/spell:homebrew":
			_, _ = w.Write([]byte("<p>This page does not exist yet. Create it?</p>"))
		case "/spell:broken":
			w.WriteHeader(http.StatusBadGateway)
		case "/spell:slow":
			time.Sleep(200 * time.Millisecond)
		default:
			http.NotFound(w, r)
		}
	}))

	checker, err := wiki.NewHTTPChecker(&wiki.Config{Timeout: 50 * time.Millisecond})
	s.Require().NoError(err)
	s.checker = checker
}

func (s *CheckerTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *CheckerTestSuite) url(path string) string {
	return s.server.URL + path
}

func (s *CheckerTestSuite) TestExistingPage() {
	s.True(s.checker.Exists(s.ctx, s.url("/spell:eldritch-blast")))
	s.Equal(wiki.DefaultUserAgent, s.userAgent)
}

func (s *CheckerTestSuite) TestMissingPages() {
	s.Run("404", func() {
		exists, err := s.checker.Check(s.ctx, s.url("/feat:nothing"))
		s.NoError(err)
		s.False(exists)
	})

	s.Run("placeholder page", func() {
		exists, err := s.checker.Check(s.ctx, s.url("/spell:homebrew"))
		s.NoError(err)
		s.False(exists)
	})

	s.Run("empty url", func() {
		s.False(s.checker.Exists(s.ctx, ""))
	})
}

func (s *CheckerTestSuite) TestFailuresReadAsFalse() {
	s.Run("server error", func() {
		_, err := s.checker.Check(s.ctx, s.url("/spell:broken"))
		s.Error(err)
		s.False(s.checker.Exists(s.ctx, s.url("/spell:broken")))
	})

	s.Run("timeout", func() {
		_, err := s.checker.Check(s.ctx, s.url("/spell:slow"))
		s.Error(err)
	})

	s.Run("unreachable host", func() {
		s.False(s.checker.Exists(s.ctx, "http://127.0.0.1:1/spell:x"))
	})
}
