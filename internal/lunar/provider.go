package lunar

import (
	"math"
	"time"
)

// PhaseProvider returns the Moon's illumination phase for an instant:
// a fraction in [0, 1) where 0 is new moon and 0.5 is full moon.
type PhaseProvider interface {
	Phase(t time.Time) float64
}

// PhaseFunc adapts a plain function to PhaseProvider.
type PhaseFunc func(t time.Time) float64

// Phase calls f(t).
func (f PhaseFunc) Phase(t time.Time) float64 {
	return f(t)
}

// Illumination describes the lit portion of the Moon as seen from Earth.
type Illumination struct {
	Fraction float64 // illuminated fraction of the disk, 0..1
	Phase    float64 // 0 new, 0.25 first quarter, 0.5 full, 0.75 last quarter
	Angle    float64 // midpoint angle of the bright limb, radians
}

const (
	rad        = math.Pi / 180
	obliquity  = rad * 23.4397
	dayMillis  = 86400000.0
	julian1970 = 2440588.0
	julian2000 = 2451545.0

	sunDistanceKm = 149598000.0
)

// SunCalc computes illumination with the low-precision Sun and Moon positions used by
// the SunCalc family of libraries. Accurate to a few hours in phase timing.
type SunCalc struct{}

// Phase implements PhaseProvider.
func (SunCalc) Phase(t time.Time) float64 {
	return SunCalc{}.Illumination(t).Phase
}

// Illumination computes fraction, phase and bright-limb angle at t.
func (SunCalc) Illumination(t time.Time) Illumination {
	d := daysSinceJ2000(t)
	sDec, sRA := sunCoords(d)
	mDec, mRA, mDist := moonCoords(d)

	phi := math.Acos(math.Sin(sDec)*math.Sin(mDec) + math.Cos(sDec)*math.Cos(mDec)*math.Cos(sRA-mRA))
	inc := math.Atan2(sunDistanceKm*math.Sin(phi), mDist-sunDistanceKm*math.Cos(phi))
	angle := math.Atan2(
		math.Cos(sDec)*math.Sin(sRA-mRA),
		math.Sin(sDec)*math.Cos(mDec)-math.Cos(sDec)*math.Sin(mDec)*math.Cos(sRA-mRA),
	)

	sign := 1.0
	if angle < 0 {
		sign = -1
	}

	return Illumination{
		Fraction: (1 + math.Cos(inc)) / 2,
		Phase:    wrapUnit(0.5 + 0.5*inc*sign/math.Pi),
		Angle:    angle,
	}
}

func daysSinceJ2000(t time.Time) float64 {
	return float64(t.UnixMilli())/dayMillis - 0.5 + julian1970 - julian2000
}

func rightAscension(l, b float64) float64 {
	return math.Atan2(math.Sin(l)*math.Cos(obliquity)-math.Tan(b)*math.Sin(obliquity), math.Cos(l))
}

func declination(l, b float64) float64 {
	return math.Asin(math.Sin(b)*math.Cos(obliquity) + math.Cos(b)*math.Sin(obliquity)*math.Sin(l))
}

func sunCoords(d float64) (dec, ra float64) {
	m := rad * (357.5291 + 0.98560028*d)
	c := rad * (1.9148*math.Sin(m) + 0.02*math.Sin(2*m) + 0.0003*math.Sin(3*m))
	perihelion := rad * 102.9372
	l := m + c + perihelion + math.Pi
	return declination(l, 0), rightAscension(l, 0)
}

func moonCoords(d float64) (dec, ra, distKm float64) {
	meanLon := rad * (218.316 + 13.176396*d)
	meanAnomaly := rad * (134.963 + 13.064993*d)
	meanDist := rad * (93.272 + 13.229350*d)

	l := meanLon + rad*6.289*math.Sin(meanAnomaly)
	b := rad * 5.128 * math.Sin(meanDist)
	distKm = 385001 - 20905*math.Cos(meanAnomaly)

	return declination(l, b), rightAscension(l, b), distKm
}

// Synodic is a mean-cycle model: phase is the elapsed fraction of the average synodic
// month since a reference new moon. Cheap and dependency free; drifts by up to about
// half a day because it ignores the Moon's orbital eccentricity.
type Synodic struct{}

const (
	synodicMonthDays    = 29.53059
	referenceNewMoonJD  = 2451550.26 // 2000-01-06 18:14 UTC
	julianDayUnixOffset = 2440587.5
)

// Phase implements PhaseProvider.
func (Synodic) Phase(t time.Time) float64 {
	jd := float64(t.UnixMilli())/dayMillis + julianDayUnixOffset
	return wrapUnit((jd - referenceNewMoonJD) / synodicMonthDays)
}

// IlluminatedPercent converts a phase fraction into the lit percentage of the disk.
func IlluminatedPercent(phase float64) float64 {
	return (1 - math.Cos(2*math.Pi*phase)) / 2 * 100
}

// wrapUnit folds x into [0, 1).
func wrapUnit(x float64) float64 {
	x = math.Mod(x, 1)
	if x < 0 {
		x++
	}
	if x >= 1 {
		x = 0
	}
	return x
}
