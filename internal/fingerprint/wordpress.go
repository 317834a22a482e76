package fingerprint

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/amosroger91/AI-Marketing-Agent/internal/core"
)

var wpIndicators = []string{
	"wp-content",
	"wp-includes",
	"/wp-json/",
	"wordpress",
}

var wpVersionVar = regexp.MustCompile(`\$wp_version\s*=\s*['"]([^'"]+)['"]`)

// DetectWordPress fetches the page and looks for WordPress markers in the
// body and the generator meta tag. When detected it tries the well-known
// version disclosure path and, if a scanner is wired in, enumerates
// vulnerable plugins. Every failure path returns the defaults collected so
// far.
func (d *Detector) DetectWordPress(ctx context.Context, target string) core.WordPressInfo {
	info := core.WordPressInfo{
		Plugins:           []string{},
		VulnerablePlugins: []core.VulnerablePlugin{},
		Themes:            []string{},
	}

	url := normalizeURL(target)
	body, err := d.fetchBody(ctx, url)
	if err != nil {
		return info
	}

	if !looksLikeWordPress(body) {
		return info
	}
	info.IsWordPress = true

	if version := d.fetchDisclosedVersion(ctx, url); version != "" {
		info.Version = version
	}

	report, err := d.scanner.Scan(ctx, url)
	if err != nil {
		// Scanner absence or failure never blocks detection.
		d.logger.Debug("vulnerability scan skipped", zap.String("url", url), zap.Error(err))
	} else {
		if len(report.Plugins) > 0 {
			info.Plugins = report.Plugins
		}
		if len(report.VulnerablePlugins) > 0 {
			info.VulnerablePlugins = report.VulnerablePlugins
		}
		info.Vulnerabilities = len(info.VulnerablePlugins)
		if report.Version != "" {
			info.Version = report.Version
		}
	}

	if major, ok := majorVersion(info.Version); ok && major < 5 {
		info.OutdatedCore = true
	}

	return info
}

func looksLikeWordPress(body string) bool {
	lower := strings.ToLower(body)
	for _, indicator := range wpIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return false
	}
	generator, _ := doc.Find(`meta[name="generator"]`).Attr("content")
	return strings.HasPrefix(strings.ToLower(generator), "wordpress")
}

func (d *Detector) fetchDisclosedVersion(ctx context.Context, url string) string {
	body, err := d.fetchBody(ctx, strings.TrimSuffix(url, "/")+"/wp-includes/version.php")
	if err != nil {
		return ""
	}
	if match := wpVersionVar.FindStringSubmatch(body); match != nil {
		return match[1]
	}
	return ""
}

func majorVersion(version string) (int, bool) {
	if version == "" {
		return 0, false
	}
	head, _, _ := strings.Cut(version, ".")
	major, err := strconv.Atoi(head)
	if err != nil {
		return 0, false
	}
	return major, true
}
