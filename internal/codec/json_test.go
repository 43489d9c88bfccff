package codec

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PratikDhanave/feature-request-check/internal/fixtures"
	"github.com/PratikDhanave/feature-request-check/internal/models"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	b, err := fixtures.FS.ReadFile(name)
	require.NoError(t, err)
	return b
}

func TestJSON_DecodeGeodeRequest(t *testing.T) {
	var ev models.FeatureCreationRequestEvent
	err := NewJSON().Decode(bytes.NewReader(readFixture(t, fixtures.Geode)), &ev)
	require.NoError(t, err)

	assert.Equal(t, "5b1f0a52-3c1e-4a8e-9d2f-0c6b9e7a1d44", ev.RequestID)
	assert.Equal(t, "geode", ev.RequestOwner)
	assert.True(t, ev.RequestDate.Equal(time.Date(2020, time.March, 12, 10, 15, 30, 0, time.UTC)))
	assert.Equal(t, "FeatureCreationRequestEvent", ev.MessageType)

	require.NotNil(t, ev.Metadata)
	assert.Equal(t, "geode-20200312", ev.Metadata.Session)
	assert.Equal(t, "NORMAL", ev.Metadata.Priority)
	assert.True(t, ev.Metadata.UpdateIfExists)
	require.Len(t, ev.Metadata.Storages, 1)
	assert.Equal(t, "disk", ev.Metadata.Storages[0].PluginBusinessID)
	assert.Equal(t, []string{"RAWDATA", "QUICKLOOK_SD"}, ev.Metadata.Storages[0].TargetTypes)

	require.NotNil(t, ev.Feature)
	assert.Equal(t, "GEODE_L0_20200312_0001", ev.Feature.ID)
	assert.Equal(t, "DATA", ev.Feature.EntityType)
	require.NotNil(t, ev.Feature.Geometry)
	assert.Equal(t, "Polygon", ev.Feature.Geometry.Type)
	assert.JSONEq(t, `[[[1.0,43.0],[2.0,43.0],[2.0,44.0],[1.0,44.0],[1.0,43.0]]]`, string(ev.Feature.Geometry.Coordinates))
	assert.Equal(t, "GEODE", ev.Feature.Properties["mission"])

	require.Len(t, ev.Feature.Files, 1)
	assert.Equal(t, int64(1048576), ev.Feature.Files[0].Attributes.Filesize)
	assert.Equal(t, "MD5", ev.Feature.Files[0].Attributes.Algorithm)
	require.Len(t, ev.Feature.Files[0].Locations, 1)
}

func TestJSON_DecodeMinimalRequest(t *testing.T) {
	var ev models.FeatureCreationRequestEvent
	err := NewJSON().Decode(bytes.NewReader(readFixture(t, fixtures.Minimal)), &ev)
	require.NoError(t, err)

	require.NotNil(t, ev.Feature)
	assert.Nil(t, ev.Feature.Geometry)
	assert.Empty(t, ev.Feature.Files)
}

func TestJSON_DecodeRejectsMalformed(t *testing.T) {
	cases := map[string][]byte{
		"syntax error":       readFixture(t, fixtures.Invalid),
		"missing fields":     readFixture(t, fixtures.Incomplete),
		"empty":              {},
		"json null":          []byte("null"),
		"truncated":          []byte(`{"requestId": "x", "feature": `),
		"type mismatch":      []byte(`{"requestId": 12}`),
		"invalid utf-8":      {'{', '"', 'a', 0xff, '"', ':', '1', '}'},
		"unknown priority":   bytes.Replace(readFixture(t, fixtures.Geode), []byte(`"NORMAL"`), []byte(`"URGENT"`), 1),
		"bad geometry type":  bytes.Replace(readFixture(t, fixtures.Geode), []byte(`"Polygon"`), []byte(`"Circle"`), 1),
		"file without name":  bytes.Replace(readFixture(t, fixtures.Geode), []byte(`"filename"`), []byte(`"name"`), 1),
		"not a geojson type": bytes.Replace(readFixture(t, fixtures.Geode), []byte(`"type": "Feature"`), []byte(`"type": "Thing"`), 1),
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			var ev models.FeatureCreationRequestEvent
			err := NewJSON().Decode(bytes.NewReader(payload), &ev)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedPayload)
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestJSON_DecodeReadErrorIsNotMalformed(t *testing.T) {
	var ev models.FeatureCreationRequestEvent
	err := NewJSON().Decode(failingReader{}, &ev)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMalformedPayload)
	assert.True(t, strings.Contains(err.Error(), "disk on fire"))
}
