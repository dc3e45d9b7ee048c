package math

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	result := v1.Add(v2)
	expected := NewVec3(5, 7, 9)
	if result != expected {
		t.Errorf("Add: expected %v, got %v", expected, result)
	}

	result = v2.Sub(v1)
	expected = NewVec3(3, 3, 3)
	if result != expected {
		t.Errorf("Sub: expected %v, got %v", expected, result)
	}

	dot := v1.Dot(v2)
	if dot != 32 {
		t.Errorf("Dot: expected 32, got %v", dot)
	}

	// Right x Up = Front in a right-handed system
	cross := Vec3Right.Cross(Vec3Up)
	if cross != Vec3Front {
		t.Errorf("Cross: expected %v, got %v", Vec3Front, cross)
	}
}

func TestVec3Normalize(t *testing.T) {
	normalized := NewVec3(3, 0, 0).Normalize()
	if normalized != Vec3Right {
		t.Errorf("Normalize: expected %v, got %v", Vec3Right, normalized)
	}
	if math.Abs(float64(normalized.Length()-1)) > 0.0001 {
		t.Errorf("Normalize: expected length 1, got %v", normalized.Length())
	}
	if Vec3Zero.Normalize() != Vec3Zero {
		t.Errorf("Normalize: zero vector must stay zero")
	}
}

func TestVec3Reflect(t *testing.T) {
	// A ray going down-right bounces off a floor into up-right.
	in := NewVec3(1, -1, 0)
	assert.Equal(t, NewVec3(1, 1, 0), in.Reflect(Vec3Up))
}

func TestMat4Identity(t *testing.T) {
	m := Mat4Identity()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			expected := float32(0)
			if i == j {
				expected = 1
			}
			if m[i][j] != expected {
				t.Errorf("Identity: expected [%d][%d] = %v, got %v", i, j, expected, m[i][j])
			}
		}
	}
	if m.Mul(m) != m {
		t.Errorf("Mul: identity * identity must be identity")
	}
}

func TestMat4Translation(t *testing.T) {
	translation := NewVec3(1, 2, 3)
	m := Mat4Translation(translation)

	if m[3][0] != 1 || m[3][1] != 2 || m[3][2] != 3 {
		t.Errorf("Translation: expected (1,2,3), got (%v,%v,%v)", m[3][0], m[3][1], m[3][2])
	}

	result := NewVec4(0, 0, 0, 1).MulMat(m)
	if result.ToVec3() != translation {
		t.Errorf("Translation: expected %v, got %v", translation, result.ToVec3())
	}
}

func TestMat4RotationY(t *testing.T) {
	// +90 degrees about Y carries +X onto -Z.
	p := Mat4RotationY(Radians(90)).MulPoint(Vec3Right)
	assert.InDelta(t, 0, p.X, tol)
	assert.InDelta(t, 0, p.Y, tol)
	assert.InDelta(t, -1, p.Z, tol)

	assert.Equal(t, Mat4Identity(), Mat4RotationY(0))
}

func TestMat4BuilderOrder(t *testing.T) {
	// Translate then scale in builder order: the scale acts first on points.
	m := Mat4Identity().Translate(NewVec3(1, 0, 0)).Scale(NewVec3(2, 2, 2))
	assert.Equal(t, NewVec3(3, 0, 0), m.MulPoint(Vec3Right))

	// Rotate then translate: the offset is rotated with the frame.
	m = Mat4Identity().RotateY(Radians(90)).Translate(NewVec3(1, 0, 0))
	p := m.MulPoint(Vec3Zero)
	assert.InDelta(t, 0, p.X, tol)
	assert.InDelta(t, -1, p.Z, tol)
}

func TestMat4MatchesMathgl(t *testing.T) {
	ours := Mat4Identity().
		RotateY(0.3).
		Translate(NewVec3(0.1, -0.2, 0.3)).
		Scale(NewVec3(0.1, 0.1, 0.1)).Flatten()
	ref := mgl32.HomogRotate3DY(0.3).
		Mul4(mgl32.Translate3D(0.1, -0.2, 0.3)).
		Mul4(mgl32.Scale3D(0.1, 0.1, 0.1))
	for i := range ours {
		assert.InDelta(t, ref[i], ours[i], tol, "element %d", i)
	}
}

func TestMat4Perspective(t *testing.T) {
	fov := Radians(45)
	ours := Mat4Perspective(fov, 16.0/9.0, 0.01, 100).Flatten()
	ref := mgl32.Perspective(fov, 16.0/9.0, 0.01, 100)
	for i := range ours {
		assert.InDelta(t, ref[i], ours[i], tol, "element %d", i)
	}
}

func TestMat4LookAt(t *testing.T) {
	eye := NewVec3(0, 0, -2)
	m := Mat4LookAt(eye, Vec3Zero, Vec3Up)

	// The view matrix moves the eye to the origin.
	p := m.MulPoint(eye)
	assert.InDelta(t, 0, p.X, tol)
	assert.InDelta(t, 0, p.Y, tol)
	assert.InDelta(t, 0, p.Z, tol)

	ref := mgl32.LookAtV(mgl32.Vec3{0, 0, -2}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	ours := m.Flatten()
	for i := range ours {
		assert.InDelta(t, ref[i], ours[i], tol, "element %d", i)
	}
}

func randomAffine(rng *rand.Rand) Mat4 {
	for {
		var m Mat4
		for c := 0; c < 3; c++ {
			for r := 0; r < 3; r++ {
				m[c][r] = rng.Float32()*4 - 2
			}
		}
		m[3] = [4]float32{rng.Float32(), rng.Float32(), rng.Float32(), 1}
		if d := m.Upper3().Determinant(); d > 0.1 || d < -0.1 {
			return m
		}
	}
}

func TestNormalMatrixIsInverseTranspose(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 0; n < 100; n++ {
		m := randomAffine(rng)
		normal := m.NormalMatrix()

		// transpose(N) * upper3(M) must be the identity.
		product := normal.Transpose().Mul(m.Upper3())
		id := Mat3Identity()
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				require.InDelta(t, id[i][j], product[i][j], 1e-3, "case %d [%d][%d]", n, i, j)
			}
		}

		flat := m.Flatten()
		ref := mgl32.Mat4(flat).Mat3().Inv().Transpose()
		ours := normal.Flatten()
		for i := range ours {
			require.InDelta(t, ref[i], ours[i], 1e-3, "case %d element %d", n, i)
		}
	}
}

func TestMat3InverseSingular(t *testing.T) {
	var singular Mat3
	assert.Equal(t, Mat3Identity(), singular.Inverse())
}

func TestMat3MulVec3(t *testing.T) {
	// Rotation block of +90 degrees about Y.
	r := Mat4RotationY(Radians(90)).Upper3()
	v := r.MulVec3(Vec3Right)
	assert.InDelta(t, -1, v.Z, tol)
	assert.InDelta(t, 0, v.X, tol)
}

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Mat4Identity()
	m2 := Mat4RotationY(0.5)

	for i := 0; i < b.N; i++ {
		_ = m1.Mul(m2)
	}
}

func BenchmarkNormalMatrix(b *testing.B) {
	m := Mat4Identity().RotateY(0.4).Translate(NewVec3(0.2, 0, 0)).Scale(NewVec3(0.1, 0.1, 0.1))
	for i := 0; i < b.N; i++ {
		_ = m.NormalMatrix()
	}
}
