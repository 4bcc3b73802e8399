package portfolio

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/atotto/clipboard"
)

var (
	ErrUnknownPlatform = errors.New("unknown social platform")
	ErrNoEmail         = errors.New("no email address configured")
)

// Services performs the side effects behind the resume, email and social
// commands. Hosts report the returned errors their own way.
type Services struct {
	Content      Content
	DownloadsDir string
	// OpenURL and CopyText default to the system browser and clipboard.
	OpenURL  func(url string) error
	CopyText func(text string) error
}

// NewServices returns Services using the system browser and clipboard.
func NewServices(content Content, downloadsDir string) *Services {
	return &Services{
		Content:      content,
		DownloadsDir: downloadsDir,
		OpenURL:      OpenBrowser,
		CopyText:     clipboard.WriteAll,
	}
}

// DownloadResume writes the resume into DownloadsDir and returns its path.
func (s *Services) DownloadResume() (string, error) {
	dir := s.DownloadsDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	path := filepath.Join(dir, s.Content.Resume.FileName)
	if err := os.WriteFile(path, []byte(s.Content.Resume.Text), 0o644); err != nil {
		return "", fmt.Errorf("write resume: %w", err)
	}
	return path, nil
}

// CopyEmail puts the owner's email on the clipboard and returns it.
func (s *Services) CopyEmail() (string, error) {
	if s.Content.Email == "" {
		return "", ErrNoEmail
	}
	copyText := s.CopyText
	if copyText == nil {
		copyText = clipboard.WriteAll
	}
	if err := copyText(s.Content.Email); err != nil {
		return s.Content.Email, fmt.Errorf("copy email: %w", err)
	}
	return s.Content.Email, nil
}

// SocialURL returns the profile URL for platform.
func (s *Services) SocialURL(platform string) (string, error) {
	url, ok := s.Content.Social[platform]
	if !ok || url == "" {
		return "", fmt.Errorf("%w: %q", ErrUnknownPlatform, platform)
	}
	return url, nil
}

// OpenSocial opens the profile for platform and returns its URL.
func (s *Services) OpenSocial(platform string) (string, error) {
	url, err := s.SocialURL(platform)
	if err != nil {
		return "", err
	}
	open := s.OpenURL
	if open == nil {
		open = OpenBrowser
	}
	if err := open(url); err != nil {
		return url, fmt.Errorf("open %s: %w", url, err)
	}
	return url, nil
}

// OpenBrowser opens url with the platform's default handler.
func OpenBrowser(url string) error {
	var err error
	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd":
		err = exec.Command("xdg-open", url).Start()
	case "windows":
		err = exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "darwin":
		err = exec.Command("open", url).Start()
	default:
		err = fmt.Errorf("unsupported platform %s", runtime.GOOS)
	}
	return err
}
