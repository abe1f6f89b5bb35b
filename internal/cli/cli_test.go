package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with args and returns stdout, stderr and the exit code.
func run(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Execute(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  *CLIError       `json:"error"`
}

func decode(t *testing.T, out string) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal([]byte(out), &env), "stdout: %s", out)
	return env
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := NewRootCommand()

	want := []string{"recommend", "watch", "catalog", "groove", "squeeze", "derate", "chem"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}

	for _, flag := range []string{"config", "format", "verbose"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}

func TestRootCommand_InvalidFormat(t *testing.T) {
	_, stderr, code := run(t, "catalog", "--format", "xml")
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stderr, `invalid format "xml"`)
}

func TestRootCommand_MissingConfig(t *testing.T) {
	_, stderr, code := run(t, "catalog", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stderr, "load config")
}

func TestCatalog_Text(t *testing.T) {
	stdout, _, code := run(t, "catalog")
	require.Equal(t, ExitSuccess, code)
	newGoldie(t).Assert(t, "catalog_text", []byte(stdout))
}

func TestCatalog_JSON(t *testing.T) {
	stdout, _, code := run(t, "catalog", "--format", "json")
	require.Equal(t, ExitSuccess, code)

	env := decode(t, stdout)
	assert.Equal(t, "ok", env.Status)

	var records []struct {
		PartNumber string `json:"part_number"`
		Motion     string `json:"motion"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &records))
	require.Len(t, records, 4)
	assert.Equal(t, "SS-4810-30N", records[0].PartNumber)
	assert.Equal(t, "static", records[2].Motion)
}

func TestRecommend_Text(t *testing.T) {
	stdout, _, code := run(t, "recommend",
		"--bore", "95.2", "--cs", "4", "--temp", "120",
		"--medium", "Mineral Oil", "--pressure", "150")
	require.Equal(t, ExitSuccess, code)
	newGoldie(t).Assert(t, "recommend_text", []byte(stdout))
}

func TestRecommend_JSON(t *testing.T) {
	stdout, _, code := run(t, "recommend", "--format", "json",
		"--bore", "95.2", "--cs", "4", "--temp", "120",
		"--medium", "Mineral Oil", "--pressure", "150")
	require.Equal(t, ExitSuccess, code)

	env := decode(t, stdout)
	require.Equal(t, "ok", env.Status)

	var res struct {
		Request struct {
			BoreMM float64 `json:"bore_mm"`
			Motion string  `json:"motion"`
		} `json:"request"`
		Match struct {
			Record struct {
				PartNumber string `json:"part_number"`
			} `json:"record"`
			Score           float64 `json:"score"`
			DeratedAllowBar float64 `json:"derated_allow_bar"`
			Factors         []struct {
				Key string `json:"key"`
			} `json:"factors"`
			Rationale string `json:"rationale"`
		} `json:"match"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.InDelta(t, 95.2, res.Request.BoreMM, 1e-9)
	assert.Equal(t, "both", res.Request.Motion)
	assert.Equal(t, "SS-6210-40V", res.Match.Record.PartNumber)
	assert.InDelta(t, 10, res.Match.Score, 1e-9)
	assert.InDelta(t, 180, res.Match.DeratedAllowBar, 1e-9)
	assert.Len(t, res.Match.Factors, 6)
	assert.Contains(t, res.Match.Rationale, "medium: ")
}

func TestRecommend_NoMatch(t *testing.T) {
	stdout, stderr, code := run(t, "recommend", "--bore", "50", "--cs", "3", "--prefer", "Viton")
	assert.Equal(t, ExitNoMatch, code)
	assert.Contains(t, stdout, "Error [no_match]")
	assert.Contains(t, stderr, "no catalog entry satisfies the hard filters")
}

func TestRecommend_NoMatchJSON(t *testing.T) {
	stdout, _, code := run(t, "recommend", "--format", "json",
		"--bore", "50", "--cs", "3", "--motion", "dynamic", "--prefer", "EPDM")
	assert.Equal(t, ExitNoMatch, code)

	env := decode(t, stdout)
	assert.Equal(t, "error", env.Status)
	require.NotNil(t, env.Error)
	assert.Equal(t, ErrCodeNoMatch, env.Error.Code)
}

func TestRecommend_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing bore", []string{"--cs", "3"}},
		{"negative pressure", []string{"--bore", "50", "--cs", "3", "--pressure=-1"}},
		{"unknown motion", []string{"--bore", "50", "--cs", "3", "--motion", "rotary"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, code := run(t, append([]string{"recommend"}, tt.args...)...)
			assert.Equal(t, ExitCommandError, code)
		})
	}
}

func TestRecommend_RequestFile(t *testing.T) {
	path := writeFile(t, "req.yaml", `
bore_mm: 120
groove_cs_mm: 5.3
temp_c: 180
medium: Sulfuric Acid
system_pressure_bar: 200
motion: dynamic
speed_m_per_s: 1.5
preferred_materials: [FFKM]
`)
	stdout, _, code := run(t, "recommend", "--request", path, "--format", "json")
	require.Equal(t, ExitSuccess, code)

	var res RecommendResult
	require.NoError(t, json.Unmarshal(decode(t, stdout).Data, &res))
	assert.Equal(t, "SS-1200-53K", res.Match.Record.PartNumber)
	assert.InDelta(t, 225, res.Match.DeratedAllowBar, 1e-9)
	assert.InDelta(t, 10, res.Match.Score, 1e-9)
}

func TestRecommend_ConfigDefaults(t *testing.T) {
	cfg := writeFile(t, "sealsel.yaml", `
log:
  level: warn
defaults:
  medium: Hydraulic Oil NBR
  temp_c: 60
`)
	stdout, _, code := run(t, "recommend", "--config", cfg, "--format", "json", "--bore", "48", "--cs", "3")
	require.Equal(t, ExitSuccess, code)

	var res RecommendResult
	require.NoError(t, json.Unmarshal(decode(t, stdout).Data, &res))
	assert.Equal(t, "Hydraulic Oil NBR", res.Request.Medium)
	assert.Equal(t, 60, res.Request.TempC)
	assert.Equal(t, "SS-4810-30N", res.Match.Record.PartNumber)
	assert.InDelta(t, 0, res.Match.Score, 1e-9)
}

func TestMetricsTextfile(t *testing.T) {
	textfile := filepath.Join(t.TempDir(), "sealsel.prom")
	cfg := writeFile(t, "sealsel.yaml", "metrics:\n  textfile: "+textfile+"\n")

	_, _, code := run(t, "recommend", "--config", cfg, "--bore", "95.2", "--cs", "4")
	require.Equal(t, ExitSuccess, code)

	data, err := os.ReadFile(textfile)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `sealsel_recommendations_total{result="match"} 1`)
	assert.Contains(t, text, `sealsel_recommendations_total{result="no_match"} 0`)
	// Seed records do not pass through AddSeal.
	assert.Contains(t, text, `sealsel_catalog_adds_total{result="ok"} 0`)
}

func TestMetricsTextfile_WrittenOnNoMatch(t *testing.T) {
	textfile := filepath.Join(t.TempDir(), "sealsel.prom")
	cfg := writeFile(t, "sealsel.yaml", "metrics:\n  textfile: "+textfile+"\n")

	_, _, code := run(t, "recommend", "--config", cfg, "--bore", "50", "--cs", "3", "--prefer", "PTFE")
	require.Equal(t, ExitNoMatch, code)

	data, err := os.ReadFile(textfile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `sealsel_recommendations_total{result="no_match"} 1`)
}

func TestGroove(t *testing.T) {
	tests := []struct {
		sealType string
		want     string
	}{
		{"Internal Seal", "groove_diameter_mm: 95.200\n"},
		{"External Seal", "groove_diameter_mm: 104.800\n"},
		{"Rod", "groove_diameter_mm: 97.500\n"},
		{"internal", "groove_diameter_mm: 97.500\n"},
	}
	for _, tt := range tests {
		t.Run(tt.sealType, func(t *testing.T) {
			stdout, _, code := run(t, "groove", "--bore", "100", "--type", tt.sealType)
			require.Equal(t, ExitSuccess, code)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestGroove_JSONRounded(t *testing.T) {
	stdout, _, code := run(t, "groove", "--format", "json", "--bore", "100", "--type", "Internal")
	require.Equal(t, ExitSuccess, code)

	var res GrooveResult
	require.NoError(t, json.Unmarshal(decode(t, stdout).Data, &res))
	assert.Equal(t, 95.2, res.GrooveDiameterMM)
}

func TestSqueeze(t *testing.T) {
	stdout, _, code := run(t, "squeeze", "--part", "SS-6210-40V", "--groove-cs", "3.4")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "squeeze_pct: 15.00\n", stdout)

	stdout, _, code = run(t, "squeeze", "--cs", "2", "--groove-cs", "2.5")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "squeeze_pct: -25.00\n", stdout)
}

func TestSqueeze_Errors(t *testing.T) {
	stdout, _, code := run(t, "squeeze", "--part", "NOPE", "--groove-cs", "3")
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stdout, "Error [not_found]")

	stdout, _, code = run(t, "squeeze", "--format", "json", "--cs", "0", "--groove-cs", "3")
	assert.Equal(t, ExitCommandError, code)
	env := decode(t, stdout)
	require.NotNil(t, env.Error)
	assert.Equal(t, ErrCodeInvalidInput, env.Error.Code)
}

func TestDerate(t *testing.T) {
	stdout, _, code := run(t, "derate", "--temp", "180", "--part", "SS-1200-53K")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "factor: 0.75\nderated_allow_bar: 225.00 (rated 300.00)\n", stdout)

	stdout, _, code = run(t, "derate", "--temp", "201")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "factor: 0.50\n", stdout)
}

func TestChem(t *testing.T) {
	tests := []struct {
		medium, material, want string
	}{
		{"Hydraulic Oil", "FKM", "rating: excellent\n"},
		{"Hydraulic Oil", "EPDM", "rating: test_recommended\n"},
		{"Hot Water", "EPDM", "rating: excellent\n"},
		{"hot water", "EPDM", "rating: test_recommended\n"},
	}
	for _, tt := range tests {
		t.Run(tt.medium+"/"+tt.material, func(t *testing.T) {
			stdout, _, code := run(t, "chem", "--medium", tt.medium, "--material", tt.material)
			require.Equal(t, ExitSuccess, code)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitNoMatch, GetExitCode(WrapExitError(ExitNoMatch, "x", nil)))
	assert.Equal(t, ExitCommandError, GetExitCode(assert.AnError))
}
