package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOptionsURL(t *testing.T) {
	cases := []struct {
		name     string
		baseURL  string
		pagePath string
		want     string
	}{
		{"корень", "", "/", "/options/"},
		{"пустой путь", "", "", "/options/"},
		{"локаль", "", "/pt-br/ocorrencia/", "/pt-br/options/"},
		{"локаль без слэша", "", "en", "/en/options/"},
		{"пустые сегменты", "", "/pt-br//x/", "/pt-br/options/"},
		{"с базовым адресом", "http://suporte.local:8080/app/", "/pt-br/", "http://suporte.local:8080/pt-br/options/"},
		{"базовый адрес и корень", "http://suporte.local", "/", "http://suporte.local/options/"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := BuildOptionsURL(tc.baseURL, tc.pagePath)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBuildOptionsURLErrors(t *testing.T) {
	_, err := BuildOptionsURL("", "%zz")
	assert.Error(t, err)

	_, err = BuildOptionsURL("http://[::1", "/")
	assert.Error(t, err)
}

func TestFallbackOptionsURL(t *testing.T) {
	assert.Equal(t, "/options/", fallbackOptionsURL(""))
	assert.Equal(t, "/options/", fallbackOptionsURL("http://[::1"))
	assert.Equal(t, "http://suporte.local/options/", fallbackOptionsURL("http://suporte.local/x/"))
}
