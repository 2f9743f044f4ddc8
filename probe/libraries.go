package probe

import (
	"bytes"
	"crypto/tls"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/zlib"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
	"github.com/pratik-anurag/feluda-examples/versions"
	"go.uber.org/zap"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	CryptoModule   = "golang.org/x/crypto"
	MinioModule    = "github.com/minio/minio-go/v7"
	CompressModule = "github.com/klauspost/compress"
	ErrorsModule   = "github.com/pkg/errors"
)

var payload = []byte("transient dependencies")

var errSentinel = errors.New("sentinel")

// TLS stands in for OpenSSL: the standard TLS stack plus x/crypto.
func TLS() Probe {
	return Probe{
		Label: "TLS",
		Check: func(logger *zap.Logger) error {
			tlsConfig := &tls.Config{MinVersion: tls.VersionTLS12}
			aead, err := chacha20poly1305.New(make([]byte, chacha20poly1305.KeySize))
			if err != nil {
				return errors.Wrap(err, "create aead")
			}
			nonce := make([]byte, aead.NonceSize())
			sealed := aead.Seal(nil, nonce, payload, nil)
			opened, err := aead.Open(nil, nonce, sealed, nil)
			if err != nil {
				return errors.Wrap(err, "open sealed payload")
			}
			if !bytes.Equal(opened, payload) {
				return errors.New("sealed payload did not round trip")
			}
			logger.Debug("Sealed payload", zap.String("minVersion", tls.VersionName(tlsConfig.MinVersion)), zap.Int("sealedBytes", len(sealed)))
			return nil
		},
		Version: func(catalog *versions.Catalog) string {
			return "crypto/tls " + catalog.GoVersion() + ", golang.org/x/crypto " + catalog.Version(CryptoModule)
		},
	}
}

// HTTPClient stands in for libcurl. The object storage client is only
// constructed, no request is sent.
func HTTPClient(endpoint string) Probe {
	return Probe{
		Label: "HTTP client",
		Check: func(logger *zap.Logger) error {
			options := &minio.Options{
				Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
				Secure: false,
			}
			client, err := minio.New(endpoint, options)
			if err != nil {
				return errors.Wrapf(err, "create object storage client for %s", endpoint)
			}
			logger.Debug("Created object storage client", zap.String("endpoint", client.EndpointURL().String()))
			return nil
		},
		Version: moduleVersion("minio-go", MinioModule),
	}
}

// Zlib compresses and inflates a payload.
func Zlib() Probe {
	return Probe{
		Label: "zlib",
		Check: func(logger *zap.Logger) error {
			var compressed bytes.Buffer
			writer := zlib.NewWriter(&compressed)
			if _, err := writer.Write(bytes.Repeat(payload, 64)); err != nil {
				return errors.Wrap(err, "compress payload")
			}
			if err := writer.Close(); err != nil {
				return errors.Wrap(err, "flush compressed payload")
			}
			size := compressed.Len()
			reader, err := zlib.NewReader(&compressed)
			if err != nil {
				return errors.Wrap(err, "open compressed payload")
			}
			defer reader.Close()
			inflated, err := io.ReadAll(reader)
			if err != nil {
				return errors.Wrap(err, "inflate payload")
			}
			if !bytes.Equal(inflated, bytes.Repeat(payload, 64)) {
				return errors.New("compressed payload did not round trip")
			}
			logger.Debug("Compressed payload",
				zap.String("original", humanize.Bytes(uint64(len(inflated)))),
				zap.String("compressed", humanize.Bytes(uint64(size))))
			return nil
		},
		Version: moduleVersion("klauspost/compress", CompressModule),
	}
}

// Errors stands in for boost.system.
func Errors() Probe {
	return Probe{
		Label: "errors",
		Check: func(_ *zap.Logger) error {
			wrapped := errors.Wrap(errSentinel, "wrapped")
			if errors.Cause(wrapped) != errSentinel {
				return errors.New("error cause was lost")
			}
			return nil
		},
		Version: moduleVersion("pkg/errors", ErrorsModule),
	}
}
