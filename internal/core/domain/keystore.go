package domain

import "time"

// KeystoreRecord describes one signing identity on disk. The record is shared
// across builds by reference to the same file; it is never copied into a
// workspace and never regenerated once the file exists.
type KeystoreRecord struct {
	// Path is the absolute keystore file path.
	Path string
	// Alias names the key pair inside the store.
	Alias string
	// StorePass protects the keystore file.
	StorePass string
	// KeyPass protects the key pair under Alias.
	KeyPass string
	// CreatedAt is when the keystore file was generated.
	CreatedAt time.Time
}

// Toolchain holds the resolved absolute paths of the native build tools one
// build uses. It is pure data; the toolchain adapter produces it and the
// pipeline consumes it.
type Toolchain struct {
	AAPT2      string
	D8         string
	Zipalign   string
	Apksigner  string
	AndroidJar string
	// Bundletool is the bundletool jar path; empty when not installed.
	// It is only required when an AAB is requested.
	Bundletool string
	Javac      string
	Java       string
	Keytool    string
	Jarsigner  string
}
