package servers_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"strings"
	"testing"

	"prepcenter/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestGetSwagger_DocumentIsValid(t *testing.T) {
	doc, err := servers.GetSwagger()
	require.NoError(t, err)

	assert.Equal(t, "Prep Center Workflow API", doc.Info.Title)
	assert.NotNil(t, doc.Paths.Find("/api/v1/tasks/{taskId}/claim"))
	assert.NotNil(t, doc.Paths.Find("/api/v1/inbox/stream"))
}

func TestRegisterHandlers_EveryOperationIsRouted(t *testing.T) {
	doc, err := servers.GetSwagger()
	require.NoError(t, err)

	e := echo.New()
	servers.RegisterHandlers(e, nil)

	routed := make(map[string]bool)
	for _, r := range e.Routes() {
		routed[r.Method+" "+r.Path] = true
	}

	for path, item := range doc.Paths.Map() {
		for method := range item.Operations() {
			echoPath := toEchoPath(path)
			assert.True(t, routed[method+" "+echoPath], "%s %s is not routed", method, echoPath)
		}
	}
}

func TestWrapper_RejectsMalformedPathUUID(t *testing.T) {
	e := echo.New()
	servers.RegisterHandlers(e, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServerInterface_HasMethodPerOperation(t *testing.T) {
	doc, err := servers.GetSwagger()
	require.NoError(t, err)

	iface := reflect.TypeOf((*servers.ServerInterface)(nil)).Elem()
	operations := 0
	for _, item := range doc.Paths.Map() {
		for _, op := range item.Operations() {
			operations++
			name := strings.ToUpper(op.OperationID[:1]) + op.OperationID[1:]
			_, ok := iface.MethodByName(name)
			assert.True(t, ok, "operation %s has no handler method", op.OperationID)
		}
	}
	assert.Equal(t, operations, iface.NumMethod())
}

func TestCodegenConfigs_TargetThisPackage(t *testing.T) {
	tests := []struct {
		config string
		output string
		kind   string
	}{
		{"types.cfg.yaml", "types.go", "models"},
		{"server.cfg.yaml", "server.go", "echo-server"},
	}

	for _, tt := range tests {
		t.Run(tt.config, func(t *testing.T) {
			raw, err := os.ReadFile(tt.config)
			require.NoError(t, err)

			var cfg struct {
				Package  string          `yaml:"package"`
				Output   string          `yaml:"output"`
				Generate map[string]bool `yaml:"generate"`
			}
			require.NoError(t, yaml.Unmarshal(raw, &cfg))

			assert.Equal(t, "servers", cfg.Package)
			assert.Equal(t, tt.output, cfg.Output)
			assert.True(t, cfg.Generate[tt.kind])
			assert.FileExists(t, tt.output)
		})
	}
}

func toEchoPath(path string) string {
	out := make([]byte, 0, len(path))
	for i := 0; i < len(path); i++ {
		switch path[i] {
		case '{':
			out = append(out, ':')
		case '}':
		default:
			out = append(out, path[i])
		}
	}
	return string(out)
}
