// Package scaffold materializes the generated Android project skeleton.
package scaffold

import (
	"bytes"
	"os"
	"path/filepath"
	"text/template"

	"go.trai.ch/zerr"
	"go.webdroid.dev/webdroid/internal/adapters/config"
	"go.webdroid.dev/webdroid/internal/core/domain"
	"go.webdroid.dev/webdroid/internal/core/ports"
)

var activityTemplate = template.Must(template.New("activity").Parse(`package {{.PackageID}};
import android.app.Activity;
import android.os.Bundle;
import android.webkit.WebSettings;
import android.webkit.WebView;
import android.webkit.WebViewClient;

public class MainActivity extends Activity {
    @Override
    protected void onCreate(Bundle savedInstanceState) {
        super.onCreate(savedInstanceState);
        WebView webView = new WebView(this);
        WebSettings webSettings = webView.getSettings();
        webSettings.setJavaScriptEnabled(true);
        webSettings.setDomStorageEnabled(true);
        webView.setWebViewClient(new WebViewClient());
        webView.loadUrl("file:///android_asset/index.html");
        setContentView(webView);
    }
}
`))

// Scaffolder creates build workspaces under the configured build directory.
// Workspace names are derived from the project fingerprint, so rebuilding an
// unchanged project reuses the same path.
type Scaffolder struct {
	buildDir string
}

// New creates a Scaffolder rooted at the configured build directory.
func New(cfg *config.Config) *Scaffolder {
	return &Scaffolder{buildDir: cfg.BuildDir}
}

var _ ports.Scaffolder = (*Scaffolder)(nil)

// Scaffold creates the workspace tree and the WebView entry-point stub.
func (s *Scaffolder) Scaffold(spec domain.ProjectSpec) (domain.BuildWorkspace, error) {
	fingerprint, err := spec.Fingerprint()
	if err != nil {
		return domain.BuildWorkspace{}, err
	}

	root := filepath.Join(s.buildDir, domain.WorkspacePrefix+fingerprint)
	ws := domain.NewWorkspace(root, spec.PackageID)

	if info, err := os.Stat(root); err == nil {
		if !info.IsDir() {
			return ws, zerr.With(zerr.Wrap(domain.ErrScaffoldConflict, "workspace path exists and is not a directory"), "path", root)
		}
		// A non-empty workspace may be retained diagnostics from a failed
		// build. Refuse to clobber it; the user removes it deliberately.
		entries, err := os.ReadDir(root)
		if err != nil {
			return ws, zerr.With(zerr.Wrap(domain.ErrScaffoldConflict, err.Error()), "path", root)
		}
		if len(entries) > 0 {
			return ws, zerr.With(zerr.Wrap(domain.ErrScaffoldConflict, "workspace already exists and is not empty, remove it to rebuild"), "path", root)
		}
	}

	dirs := []string{ws.SrcDir, ws.AssetsDir(), ws.GenDir(), ws.BundleModuleDir()}
	for _, bucket := range domain.IconDensities {
		dirs = append(dirs, filepath.Join(ws.ResDir(), bucket.Name))
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return ws, zerr.With(zerr.Wrap(domain.ErrScaffoldConflict, err.Error()), "path", dir)
		}
	}

	var buf bytes.Buffer
	if err := activityTemplate.Execute(&buf, spec); err != nil {
		return ws, zerr.Wrap(err, "failed to render entry-point stub")
	}
	stub := filepath.Join(ws.SrcDir, "MainActivity.java")
	if err := os.WriteFile(stub, buf.Bytes(), domain.FilePerm); err != nil {
		return ws, zerr.With(zerr.Wrap(domain.ErrScaffoldConflict, err.Error()), "path", stub)
	}

	return ws, nil
}
