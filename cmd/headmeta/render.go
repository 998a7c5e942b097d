package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yanizio/headmeta/internal/config"
	"github.com/yanizio/headmeta/internal/page"
)

type renderOptions struct {
	indent     bool
	configRoot string
	site       config.Site
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render FILE...",
		Short: "Render page descriptors to vue-meta JSON",
		Long: `Render decodes each descriptor, applies the site defaults, and prints one
vue-meta document per file.  A descriptor without a slug takes it from the
file name.  "-" reads a descriptor from stdin.

Site defaults come from --config (a directory holding conf/headmeta.yaml);
the --site-* flags override individual values.`,
		Example: `  headmeta render pages/home.yaml
  headmeta render --indent --site-name Example --site-url https://example.com pages/*.yaml
  cat page.yaml | headmeta render -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			site, err := opts.resolveSite(cmd)
			if err != nil {
				return err
			}
			for _, name := range args {
				if err := renderFile(cmd, name, site, opts.indent); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.indent, "indent", false, "pretty-print the output")
	f.StringVar(&opts.configRoot, "config", "", "directory holding conf/headmeta.yaml")
	f.StringVar(&opts.site.Name, "site-name", "", "site name (og:site_name)")
	f.StringVar(&opts.site.BaseURL, "site-url", "", "base URL used for canonical links")
	f.StringVar(&opts.site.Language, "site-lang", "", "default <html lang>")
	f.StringVar(&opts.site.Robots, "site-robots", "", "default robots directive")
	f.StringVar(&opts.site.TwitterSite, "twitter-site", "", "default twitter:site handle")
	return cmd
}

// resolveSite merges config-file defaults with explicitly set flags.
func (o *renderOptions) resolveSite(cmd *cobra.Command) (config.Site, error) {
	site := config.Site{}
	if o.configRoot != "" {
		cfg, err := config.LoadFrom(o.configRoot)
		if err != nil {
			return site, err
		}
		site = cfg.Site
	}

	f := cmd.Flags()
	override := func(flag string, dst *string, v string) {
		if f.Changed(flag) {
			*dst = v
		}
	}
	override("site-name", &site.Name, o.site.Name)
	override("site-url", &site.BaseURL, strings.TrimRight(o.site.BaseURL, "/"))
	override("site-lang", &site.Language, o.site.Language)
	override("site-robots", &site.Robots, o.site.Robots)
	override("twitter-site", &site.TwitterSite, o.site.TwitterSite)
	return site, nil
}

func renderFile(cmd *cobra.Command, name string, site config.Site, indent bool) error {
	var r io.Reader
	if name == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	p, err := page.Decode(r)
	if err != nil {
		return err
	}
	if p.Slug == "" && name != "-" {
		p.Slug = page.MakeSlug(strings.TrimSuffix(filepath.Base(name), filepath.Ext(name)))
	}

	doc, err := page.Render(p, site)
	if err != nil {
		return err
	}
	body, err := doc.MarshalJSON()
	if err != nil {
		return err
	}
	if indent {
		var buf bytes.Buffer
		if err := json.Indent(&buf, body, "", "  "); err != nil {
			return err
		}
		body = buf.Bytes()
	}

	zap.S().Debugw("rendered", "file", name, "slug", p.Slug, "bytes", len(body))
	out := cmd.OutOrStdout()
	if _, err := out.Write(body); err != nil {
		return err
	}
	_, err = io.WriteString(out, "\n")
	return err
}
