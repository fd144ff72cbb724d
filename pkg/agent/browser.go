package agent

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// BrowserDriver is the verification browser used by the browser_* tools.
type BrowserDriver interface {
	Navigate(ctx context.Context, url string) (string, error)
	Screenshot(ctx context.Context) (string, error)
	Click(ctx context.Context, selector string) (string, error)
	Close() error
}

const navigationTimeout = 30 * time.Second

// rodDriver drives a headless Chromium via go-rod. The browser launches
// lazily on the first tool call so sessions that never verify in the
// browser pay nothing for it.
type rodDriver struct {
	mu       sync.Mutex
	workDir  string
	browser  *rod.Browser
	page     *rod.Page
	shotSeq  int
	launched bool
}

// newRodDriver creates a driver whose screenshots land under
// workDir/screenshots.
func newRodDriver(workDir string) *rodDriver {
	return &rodDriver{workDir: workDir}
}

// ensurePage launches the browser and opens the single verification page.
// Callers hold d.mu.
func (d *rodDriver) ensurePage() (*rod.Page, error) {
	if d.page != nil {
		return d.page, nil
	}

	if !d.launched {
		controlURL, err := launcher.New().Headless(true).Launch()
		if err != nil {
			return nil, fmt.Errorf("launch chrome: %w", err)
		}
		browser := rod.New().ControlURL(controlURL)
		if err := browser.Connect(); err != nil {
			return nil, fmt.Errorf("connect to chrome: %w", err)
		}
		d.browser = browser
		d.launched = true
	}

	page, err := d.browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	d.page = page
	return page, nil
}

func (d *rodDriver) Navigate(ctx context.Context, url string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	page, err := d.ensurePage()
	if err != nil {
		return "", err
	}
	if err := page.Context(ctx).Timeout(navigationTimeout).Navigate(url); err != nil {
		return "", fmt.Errorf("navigate to %s: %w", url, err)
	}
	if err := page.Context(ctx).Timeout(navigationTimeout).WaitLoad(); err != nil {
		return "", fmt.Errorf("wait for %s to load: %w", url, err)
	}
	return fmt.Sprintf("navigated to %s", url), nil
}

func (d *rodDriver) Screenshot(ctx context.Context) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.page == nil {
		return "", fmt.Errorf("no page open; navigate first")
	}
	data, err := d.page.Context(ctx).Screenshot(false, nil)
	if err != nil {
		return "", fmt.Errorf("capture screenshot: %w", err)
	}

	dir := filepath.Join(d.workDir, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot directory: %w", err)
	}
	d.shotSeq++
	path := filepath.Join(dir, fmt.Sprintf("shot_%03d_%s.png", d.shotSeq, time.Now().Format("150405")))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return fmt.Sprintf("screenshot saved to %s (%d bytes)", path, len(data)), nil
}

func (d *rodDriver) Click(ctx context.Context, selector string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.page == nil {
		return "", fmt.Errorf("no page open; navigate first")
	}
	el, err := d.page.Context(ctx).Element(selector)
	if err != nil {
		return "", fmt.Errorf("find %q: %w", selector, err)
	}
	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return "", fmt.Errorf("click %q: %w", selector, err)
	}
	return fmt.Sprintf("clicked %s", selector), nil
}

// Close shuts the browser down. Safe when nothing launched.
func (d *rodDriver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.page = nil
	if d.browser == nil {
		return nil
	}
	err := d.browser.Close()
	d.browser = nil
	d.launched = false
	return err
}
