package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// writeSite lays out a small site under dir and a config pointing at it.
func writeSite(t *testing.T, dir string) string {
	t.Helper()
	for _, rel := range []string{
		"blog/index.html",
		"blog/kyoto-in-autumn.html",
		"routes/tokyo/from-london.html",
		"routes/osaka/index.html",
		"routes/osaka/notes.txt",
	} {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("<html></html>"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	cfgPath := filepath.Join(dir, ".sitemap.yml")
	yml := "site_url: https://ryokome.com\n" +
		"blog_dir: " + filepath.Join(dir, "blog") + "\n" +
		"routes_dir: " + filepath.Join(dir, "routes") + "\n" +
		"output_dir: " + filepath.Join(dir, "public") + "\n"
	if err := os.WriteFile(cfgPath, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	return cfgPath
}

// resetFlags restores every flag to its default so commands can be run
// repeatedly within one test binary.
func resetFlags() {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, c := range append([]*cobra.Command{rootCmd}, rootCmd.Commands()...) {
		c.Flags().VisitAll(reset)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootGenerates(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeSite(t, dir)

	out, err := execute(t, "--config", cfgPath, "--quiet")
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, out)
	}

	for _, want := range []string{
		"Generating sitemaps for https://ryokome.com...",
		"Sitemaps generated successfully",
		"   Main pages: 9",
		"   Blog pages: 2",
		"   Route pages: 2",
		"   Route sitemaps: 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	for _, name := range []string{"sitemap-main.xml", "sitemap-blog.xml", "sitemap-routes-1.xml", "sitemap.xml"} {
		if _, err := os.Stat(filepath.Join(dir, "public", name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
}

func TestGenerateThenVerify(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeSite(t, dir)

	if out, err := execute(t, "generate", "--config", cfgPath, "--quiet", "--max-urls", "1"); err != nil {
		t.Fatalf("generate: %v\n%s", err, out)
	}
	if _, err := os.Stat(filepath.Join(dir, "public", "sitemap-routes-2.xml")); err != nil {
		t.Errorf("--max-urls 1 should split routes: %v", err)
	}

	out, err := execute(t, "verify", "--config", cfgPath, "--max-urls", "1")
	if err != nil {
		t.Fatalf("verify: %v\n%s", err, out)
	}
	// 9 main + 2 blog + 2 routes across 4 parts.
	if !strings.Contains(out, "sitemap.xml OK: 4 sitemaps, 13 URLs") {
		t.Errorf("unexpected verify output:\n%s", out)
	}
}

func TestGenerateThenVerifyLowCap(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeSite(t, dir)

	f, err := os.OpenFile(cfgPath, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("max_urls_per_sitemap: 1\n"); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	if out, err := execute(t, "generate", "--config", cfgPath, "--quiet"); err != nil {
		t.Fatalf("generate: %v\n%s", err, out)
	}

	// Same config: main and blog hold more than one URL but are not chunked.
	out, err := execute(t, "verify", "--config", cfgPath)
	if err != nil {
		t.Fatalf("verify rejected generated output: %v\n%s", err, out)
	}
	if !strings.Contains(out, "sitemap.xml OK: 4 sitemaps, 13 URLs") {
		t.Errorf("unexpected verify output:\n%s", out)
	}
}

func TestVerifyWithoutGenerate(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeSite(t, dir)

	if _, err := execute(t, "verify", "--config", cfgPath); err == nil {
		t.Error("verify should fail before anything is generated")
	}
}

func TestInvalidConfigRejected(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeSite(t, dir)

	_, err := execute(t, "generate", "--config", cfgPath, "--quiet", "--site-url", "ryokome.com")
	if err == nil || !strings.Contains(err.Error(), "invalid config") {
		t.Errorf("expected invalid config error, got %v", err)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "sitemapgen ") {
		t.Errorf("unexpected version output %q", out)
	}
}
