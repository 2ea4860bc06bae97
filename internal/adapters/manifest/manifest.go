// Package manifest renders the AndroidManifest.xml for a generated project.
package manifest

import (
	"bytes"
	"os"
	"text/template"

	"go.trai.ch/zerr"
	"go.webdroid.dev/webdroid/internal/core/domain"
	"go.webdroid.dev/webdroid/internal/core/ports"
)

// defaultIcon is the framework fallback used when no icon file is supplied.
const defaultIcon = "@android:drawable/sym_def_app_icon"

var manifestTemplate = template.Must(template.New("manifest").Parse(`<?xml version="1.0" encoding="utf-8"?>
<manifest xmlns:android="http://schemas.android.com/apk/res/android"
    package="{{.PackageID}}"
    android:versionCode="{{.VersionCode}}"
    android:versionName="{{.VersionName}}">
    <uses-sdk android:minSdkVersion="24" android:targetSdkVersion="34" />
    <uses-permission android:name="android.permission.INTERNET" />
    <application
        android:label="{{.AppName}}"
        android:icon="{{.Icon}}"
        android:theme="@android:style/Theme.NoTitleBar"
        android:usesCleartextTraffic="true">
        <activity android:name=".MainActivity"
            android:exported="true">
            <intent-filter>
                <action android:name="android.intent.action.MAIN" />
                <category android:name="android.intent.category.LAUNCHER" />
            </intent-filter>
        </activity>
    </application>
</manifest>
`))

type templateData struct {
	PackageID   string
	VersionCode int
	VersionName string
	AppName     string
	Icon        string
}

// Writer implements ports.ManifestWriter.
type Writer struct{}

// New creates a Writer.
func New() *Writer {
	return &Writer{}
}

var _ ports.ManifestWriter = (*Writer)(nil)

// Render produces the manifest bytes for spec. The output is a pure function
// of the spec fields, so repeated builds produce byte-identical manifests.
func (w *Writer) Render(spec domain.ProjectSpec) ([]byte, error) {
	icon := defaultIcon
	if spec.IconFile != "" {
		icon = "@mipmap/ic_launcher"
	}

	var buf bytes.Buffer
	err := manifestTemplate.Execute(&buf, templateData{
		PackageID:   spec.PackageID,
		VersionCode: spec.VersionCode,
		VersionName: spec.VersionName,
		AppName:     spec.AppName,
		Icon:        icon,
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to render manifest")
	}
	return buf.Bytes(), nil
}

// Write renders the manifest into the workspace and returns its path.
func (w *Writer) Write(spec domain.ProjectSpec, ws domain.BuildWorkspace) (string, error) {
	data, err := w.Render(spec)
	if err != nil {
		return "", err
	}
	path := ws.ManifestPath()
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to write manifest"), "path", path)
	}
	return path, nil
}
