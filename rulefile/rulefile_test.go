package rulefile_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shu-go/conventional"
	"github.com/shu-go/conventional/rulefile"
)

const sampleYAML = `types:
  "# comment": {description: team types}
  feat: {description: A new feature, emoji: ":sparkles:", category: feature}
  Hotfix: {description: Urgent production fix, category: fix}
  deps: {description: Dependency bumps, category: maintenance}
denyAdlibType: true
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestRead(t *testing.T) {
	t.Run("Should read YAML in order", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rule.yaml")
		writeFile(t, path, sampleYAML)

		r, err := rulefile.Read(path)
		require.NoError(t, err)
		assert.True(t, r.DenyAdlibType)
		assert.Equal(t, []string{"# comment", "feat", "Hotfix", "deps"}, r.Types.Keys())
		assert.Equal(t, []conventional.CommitType{"feat", "hotfix", "deps"}, r.Table().Types())

		info, found := r.Table().Lookup("hotfix")
		require.True(t, found)
		assert.Equal(t, conventional.CategoryFix, info.Category)
	})

	t.Run("Should read JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rule.json")
		writeFile(t, path, `{"types": {"feat": {"description": "A new feature"}, "fix": {"description": "A bug fix"}}, "denyAdlibType": false}`)

		r, err := rulefile.Read(path)
		require.NoError(t, err)
		assert.False(t, r.DenyAdlibType)
		assert.Equal(t, []string{"feat", "fix"}, r.Types.Keys())
	})

	t.Run("Should guess the format without a known extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rule")
		writeFile(t, path, sampleYAML)

		r, err := rulefile.Read(path)
		require.NoError(t, err)
		assert.True(t, r.DenyAdlibType)
	})

	t.Run("Should fail on a missing file or a directory", func(t *testing.T) {
		dir := t.TempDir()

		_, err := rulefile.Read(filepath.Join(dir, "nope.yaml"))
		assert.Error(t, err)

		_, err = rulefile.Read(dir)
		assert.Error(t, err)
	})

	t.Run("Should fail on broken YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rule.yaml")
		writeFile(t, path, "types: [unclosed\n")

		_, err := rulefile.Read(path)
		assert.Error(t, err)
	})

	t.Run("Should reject invalid entries", func(t *testing.T) {
		cases := map[string]string{
			"type with space":  "types:\n  \"bad type\": {description: x}\n",
			"type with colon":  "types:\n  \"bad:\": {description: x}\n",
			"unknown category": "types:\n  feat: {category: shiny}\n",
			"bare emoji name":  "types:\n  feat: {emoji: sparkles}\n",
		}
		for name, content := range cases {
			t.Run(name, func(t *testing.T) {
				path := filepath.Join(t.TempDir(), "rule.yaml")
				writeFile(t, path, content)

				_, err := rulefile.Read(path)
				assert.Error(t, err)
			})
		}
	})
}

func TestRuleParser(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rule.yaml")
	writeFile(t, path, sampleYAML)

	r, err := rulefile.Read(path)
	require.NoError(t, err)
	p := r.Parser()

	h, err := p.Parse("HOTFIX(api): stop the bleeding")
	require.NoError(t, err)
	assert.Equal(t, conventional.Header{Type: "hotfix", Scope: "api", Description: "stop the bleeding"}, h)

	_, err = p.Parse("docs: not in this rule")
	assert.ErrorIs(t, err, conventional.ErrUnknownType)

	// default rule allows ad-lib types
	d := rulefile.Default(false)
	_, err = d.Parser().Parse("docs2: anything")
	assert.NoError(t, err)
}

func TestWrite(t *testing.T) {
	for _, name := range []string{"rule.yaml", "rule.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			rule := rulefile.Default(true)

			require.NoError(t, rulefile.Write(path, rule))

			r, err := rulefile.Read(path)
			require.NoError(t, err)
			assert.Equal(t, rule.Types.Keys(), r.Types.Keys())
			assert.Equal(t, rule.DenyAdlibType, r.DenyAdlibType)

			info, found := r.Table().Lookup(conventional.TypeFeat)
			require.True(t, found)
			assert.Equal(t, ":sparkles:", info.Emoji)
			assert.Equal(t, conventional.CategoryFeature, info.Category)
		})
	}
}

func TestFind(t *testing.T) {
	t.Run("Should find the rule file in dir", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, rulefile.DefaultName+".yaml")
		writeFile(t, path, sampleYAML)

		r, found := rulefile.Find(dir)
		assert.Equal(t, path, found)
		assert.True(t, r.DenyAdlibType)
	})

	t.Run("Should prefer the exact path", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, rulefile.DefaultName+".yaml"), sampleYAML)

		exact := filepath.Join(t.TempDir(), "team-rule.json")
		writeFile(t, exact, `{"types": {"feat": {"description": "A new feature"}}}`)

		r, found := rulefile.Find(dir, rulefile.ExactPath(exact))
		assert.Equal(t, exact, found)
		assert.False(t, r.DenyAdlibType)
		assert.Equal(t, []string{"feat"}, r.Types.Keys())
	})

	t.Run("Should warn and fall back on a broken rule file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, rulefile.DefaultName+".yaml")
		writeFile(t, path, "types: [unclosed\n")

		var buf bytes.Buffer
		r, _ := rulefile.Find(dir, rulefile.ExactPath(path), rulefile.WithLogger(log.New(&buf)))

		assert.Equal(t, rulefile.Default(false).Types.Keys(), r.Types.Keys())
		assert.Contains(t, buf.String(), "rule file ignored")
		assert.Contains(t, buf.String(), path)
	})
}
