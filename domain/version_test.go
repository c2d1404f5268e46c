package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagesphinx63920/updatechecker/domain"
)

func TestNewVersion(t *testing.T) {
	t.Parallel()

	t.Run("should parse plain dotted-integer strings", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			raw  string
		}{
			{name: "should accept a single component", raw: "1"},
			{name: "should accept two components", raw: "1.2"},
			{name: "should accept three components", raw: "1.2.3"},
			{name: "should accept many components", raw: "10.20.30.40.50"},
			{name: "should accept zero components", raw: "0.0.0"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				// when
				v, err := domain.NewVersion(tt.raw)

				// then
				require.NoError(t, err)
				assert.Equal(t, tt.raw, v.Raw())
				assert.Equal(t, tt.raw, v.Numeric())
				assert.Equal(t, domain.KindRelease, v.Kind())
			})
		}
	})

	t.Run("should classify recognized suffixes", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name     string
			raw      string
			numeric  string
			expected domain.Kind
		}{
			{
				name:     "should classify -snapshot as snapshot",
				raw:      "1.0-snapshot",
				numeric:  "1.0",
				expected: domain.KindSnapshot,
			},
			{
				name:     "should classify -SNAPSHOT case-insensitively",
				raw:      "2.1.0-SNAPSHOT",
				numeric:  "2.1.0",
				expected: domain.KindSnapshot,
			},
			{
				name:     "should classify -dev as dev",
				raw:      "1.0.0-dev",
				numeric:  "1.0.0",
				expected: domain.KindDev,
			},
			{
				name:     "should classify -Dev case-insensitively",
				raw:      "3.4-Dev",
				numeric:  "3.4",
				expected: domain.KindDev,
			},
			{
				name:     "should classify no suffix as release",
				raw:      "1.0.0",
				numeric:  "1.0.0",
				expected: domain.KindRelease,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				// when
				v, err := domain.NewVersion(tt.raw)

				// then
				require.NoError(t, err)
				assert.Equal(t, tt.expected, v.Kind())
				assert.Equal(t, tt.numeric, v.Numeric())
				assert.Equal(t, tt.raw, v.Raw())
			})
		}
	})

	t.Run("should reject malformed strings", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			raw  string
		}{
			{name: "should reject letters", raw: "abc"},
			{name: "should reject mixed alphanumerics", raw: "1.2a.3"},
			{name: "should reject empty string", raw: ""},
			{name: "should reject trailing dot", raw: "1.2."},
			{name: "should reject leading dot", raw: ".1.2"},
			{name: "should reject missing segment", raw: "1..2"},
			{name: "should reject unrecognized suffix", raw: "1.0.0-rc"},
			{name: "should reject bare suffix", raw: "-snapshot"},
			{name: "should reject negative component", raw: "1.-2.3"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				// when
				_, err := domain.NewVersion(tt.raw)

				// then
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidFormat)
			})
		}
	})
}

func TestNewPrereleaseVersion(t *testing.T) {
	t.Parallel()

	t.Run("should force dev kind without a matching suffix", func(t *testing.T) {
		t.Parallel()

		// when
		v, err := domain.NewPrereleaseVersion("1.0.0", true)

		// then
		require.NoError(t, err)
		assert.Equal(t, domain.KindDev, v.Kind())
	})

	t.Run("should accept an unrecognized suffix when marked prerelease", func(t *testing.T) {
		t.Parallel()

		// when
		v, err := domain.NewPrereleaseVersion("1.0.0-rc", true)

		// then
		require.NoError(t, err)
		assert.Equal(t, domain.KindDev, v.Kind())
		assert.Equal(t, "1.0.0", v.Numeric())
		assert.Equal(t, "1.0.0-rc", v.Raw())
	})

	t.Run("should keep snapshot classification over the prerelease flag", func(t *testing.T) {
		t.Parallel()

		// when
		v, err := domain.NewPrereleaseVersion("1.0-snapshot", true)

		// then
		require.NoError(t, err)
		assert.Equal(t, domain.KindSnapshot, v.Kind())
	})

	t.Run("should behave like NewVersion when the flag is false", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := domain.NewPrereleaseVersion("1.0.0-rc", false)

		// then
		assert.ErrorIs(t, err, domain.ErrInvalidFormat)
	})
}

func TestVersionCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		left     string
		right    string
		expected int
	}{
		{name: "should consider equal versions equal", left: "1.2.3", right: "1.2.3", expected: 0},
		{name: "should pad missing trailing components with zero", left: "1.2", right: "1.2.0", expected: 0},
		{name: "should compare components numerically not lexically", left: "1.10", right: "1.9", expected: 1},
		{name: "should detect an older major", left: "1.9.9", right: "2.0.0", expected: -1},
		{name: "should detect a newer patch", left: "1.0.1", right: "1.0.0", expected: 1},
		{name: "should ignore the suffix when comparing", left: "1.0.0-dev", right: "1.0.1", expected: -1},
		{name: "should treat snapshot and release of same tuple as equal", left: "1.0-snapshot", right: "1.0", expected: 0},
		{name: "should decide on the first differing component", left: "2.0.9", right: "2.1.0", expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			left, err := domain.NewVersion(tt.left)
			require.NoError(t, err)
			right, err := domain.NewVersion(tt.right)
			require.NoError(t, err)

			// when
			result := left.Compare(right)

			// then
			assert.Equal(t, tt.expected, result)
			assert.Equal(t, -tt.expected, right.Compare(left))
		})
	}
}

func TestVersionEquals(t *testing.T) {
	t.Parallel()

	t.Run("should ignore suffix differences", func(t *testing.T) {
		t.Parallel()

		// given
		snapshot, err := domain.NewVersion("1.0-snapshot")
		require.NoError(t, err)
		release, err := domain.NewVersion("1.0")
		require.NoError(t, err)

		// then
		assert.True(t, snapshot.Equals(release))
		assert.True(t, release.Equals(snapshot))
	})

	t.Run("should not equal a different numeric tuple", func(t *testing.T) {
		t.Parallel()

		// given
		older, err := domain.NewVersion("1.0")
		require.NoError(t, err)
		newer, err := domain.NewVersion("1.0.1")
		require.NoError(t, err)

		// then
		assert.False(t, older.Equals(newer))
	})
}

func TestKindString(t *testing.T) {
	t.Parallel()

	t.Run("should name all kinds", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "release", domain.KindRelease.String())
		assert.Equal(t, "snapshot", domain.KindSnapshot.String())
		assert.Equal(t, "dev", domain.KindDev.String())
	})
}
