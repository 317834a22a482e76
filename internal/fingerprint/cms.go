package fingerprint

import (
	"context"
	"regexp"
	"strings"

	"github.com/amosroger91/AI-Marketing-Agent/internal/core"
)

var drupalVersion = regexp.MustCompile(`drupal\s+(\d+\.\d+)`)

// DetectOtherCMS substring-matches the page body against indicators for
// Drupal, Joomla, and Magento, in that priority order. First match wins.
func (d *Detector) DetectOtherCMS(ctx context.Context, target string) core.CMSInfo {
	var info core.CMSInfo

	body, err := d.fetchBody(ctx, normalizeURL(target))
	if err != nil {
		return info
	}
	content := strings.ToLower(body)

	switch {
	case strings.Contains(content, "drupal") || strings.Contains(content, "sites/all/modules"):
		info.Type = "Drupal"
		if match := drupalVersion.FindStringSubmatch(content); match != nil {
			info.Version = match[1]
		}
	case strings.Contains(content, "joomla") || strings.Contains(content, "administrator/index.php"):
		info.Type = "Joomla"
	case strings.Contains(content, "magento") || strings.Contains(content, "var/log/system.log"):
		info.Type = "Magento"
	}

	return info
}
