package models

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNewUser_RoundTrip(t *testing.T) {
	later := t0.Add(time.Hour)
	u := NewUser("u1", "Alice", "alice@example.com", t0, later)

	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, "Alice", u.Name)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.True(t, u.RegistrationDate.Equal(t0))
	assert.True(t, u.LastLogin.Equal(later))
}

func TestNewUser_FaceData(t *testing.T) {
	tests := []struct {
		name     string
		opts     []UserOption
		wantFace string
		wantOK   bool
	}{
		{name: "absent by default", opts: nil, wantFace: "", wantOK: false},
		{name: "supplied", opts: []UserOption{WithFace("embedding-abc")}, wantFace: "embedding-abc", wantOK: true},
		{name: "empty string is still present", opts: []UserOption{WithFace("")}, wantFace: "", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NewUser("u1", "Alice", "alice@example.com", t0, t0, tt.opts...)
			face, ok := u.Face()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantFace, face)
			assert.Equal(t, tt.wantOK, u.HasFace())
			if !tt.wantOK {
				assert.Nil(t, u.FaceData)
			}
		})
	}
}

func TestUser_Equal(t *testing.T) {
	base := NewUser("u1", "Alice", "alice@example.com", t0, t0, WithFace("embedding-abc"))

	tests := []struct {
		name  string
		other User
		want  bool
	}{
		{"identical values", NewUser("u1", "Alice", "alice@example.com", t0, t0, WithFace("embedding-abc")), true},
		{"same instant other zone", NewUser("u1", "Alice", "alice@example.com", t0.In(time.FixedZone("X", 3600)), t0, WithFace("embedding-abc")), true},
		{"different id", NewUser("u2", "Alice", "alice@example.com", t0, t0, WithFace("embedding-abc")), false},
		{"different name", NewUser("u1", "Bob", "alice@example.com", t0, t0, WithFace("embedding-abc")), false},
		{"different email", NewUser("u1", "Alice", "bob@example.com", t0, t0, WithFace("embedding-abc")), false},
		{"different registration", NewUser("u1", "Alice", "alice@example.com", t0.Add(time.Second), t0, WithFace("embedding-abc")), false},
		{"different last login", NewUser("u1", "Alice", "alice@example.com", t0, t0.Add(time.Second), WithFace("embedding-abc")), false},
		{"different face", NewUser("u1", "Alice", "alice@example.com", t0, t0, WithFace("embedding-xyz")), false},
		{"face absent", NewUser("u1", "Alice", "alice@example.com", t0, t0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Equal(tt.other))
			assert.Equal(t, tt.want, tt.other.Equal(base))
		})
	}
}

func TestUser_CmpUsesValueEquality(t *testing.T) {
	a := NewUser("u1", "Alice", "alice@example.com", t0, t0, WithFace("embedding-abc"))
	b := NewUser("u1", "Alice", "alice@example.com", t0, t0, WithFace("embedding-abc"))

	// distinct pointers, same content
	require.NotSame(t, a.FaceData, b.FaceData)
	assert.Empty(t, cmp.Diff(a, b))
}

func TestUser_CopiesDoNotMutateOriginal(t *testing.T) {
	orig := NewUser("u1", "Alice", "alice@example.com", t0, t0)
	later := t0.Add(48 * time.Hour)

	logged := orig.WithLastLogin(later)
	enrolled := logged.WithFaceData("embedding-abc")
	renamed := enrolled.WithProfile("Alicia", "alicia@example.com")
	cleared := renamed.WithoutFaceData()

	assert.True(t, orig.LastLogin.Equal(t0))
	assert.False(t, orig.HasFace())
	assert.False(t, logged.HasFace())
	assert.True(t, logged.LastLogin.Equal(later))
	assert.True(t, enrolled.HasFace())
	assert.True(t, renamed.HasFace())
	assert.Equal(t, "Alice", enrolled.Name)
	assert.False(t, cleared.HasFace())

	for _, u := range []User{logged, enrolled, renamed, cleared} {
		assert.Equal(t, orig.ID, u.ID)
	}
}

func TestUser_WithFaceDataDoesNotAlias(t *testing.T) {
	a := NewUser("u1", "Alice", "alice@example.com", t0, t0).WithFaceData("one")
	b := a.WithFaceData("two")

	fa, _ := a.Face()
	fb, _ := b.Face()
	assert.Equal(t, "one", fa)
	assert.Equal(t, "two", fb)
}

func TestUser_StringHidesFacePayload(t *testing.T) {
	u := NewUser("u1", "Alice", "alice@example.com", t0, t0, WithFace("leftEye:0.1,0.2"))
	s := u.String()

	assert.Contains(t, s, "id=u1")
	assert.Contains(t, s, "email=alice@example.com")
	assert.Contains(t, s, "faceData=present")
	assert.False(t, strings.Contains(s, "leftEye"))

	assert.Contains(t, NewUser("u1", "Alice", "alice@example.com", t0, t0).String(), "faceData=absent")
}

func TestSnapshotKind_Valid(t *testing.T) {
	assert.True(t, SnapshotRegistration.Valid())
	assert.True(t, SnapshotLogin.Valid())
	assert.False(t, SnapshotKind("selfie").Valid())
}
