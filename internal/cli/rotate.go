// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmath/quat"
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vec"
)

type rotateCommand struct {
	Euler     string  `long:"euler" description:"roll,pitch,yaw"`
	Axis      string  `long:"axis" description:"rotation axis x,y,z (normalised before use)"`
	Angle     float64 `long:"angle" description:"rotation angle around --axis"`
	Degrees   bool    `long:"degrees" short:"d" description:"angles are in degrees instead of radians"`
	Vec       string  `long:"vec" required:"yes" description:"vector x,y,z to rotate"`
	Precision int     `long:"precision" default:"6" description:"digits after the decimal point"`

	app *app
}

// Execute rotates --vec by the requested quaternion.
func (c *rotateCommand) Execute([]string) error {
	log := c.app.logger("rotate")

	if (c.Euler == "") == (c.Axis == "") {
		return fmt.Errorf("%w: give exactly one of --euler and --axis", ErrUsage)
	}
	if c.Precision < 0 {
		return fmt.Errorf("%w: negative --precision", ErrUsage)
	}
	angle := func(a float64) float64 {
		if c.Degrees {
			return a * scalar.DegreesToRadians
		}
		return a
	}

	var q quat.Quatd
	if c.Euler != "" {
		e, err := parseFloats(c.Euler, 3)
		if err != nil {
			return err
		}
		q = quat.FromEuler(angle(e[0]), angle(e[1]), angle(e[2]))
	} else {
		a, err := parseFloats(c.Axis, 3)
		if err != nil {
			return err
		}
		axis := vec.New3(a[0], a[1], a[2])
		if axis.IsZero() {
			return fmt.Errorf("%w: zero rotation axis", ErrUsage)
		}
		q = quat.FromAxisAngle(axis.Normalized(), angle(c.Angle))
	}

	p, err := parseFloats(c.Vec, 3)
	if err != nil {
		return err
	}
	v := vec.New3(p[0], p[1], p[2])
	r := q.Rotate(v)
	log.WithFields(logrus.Fields{"quat": q.String(), "in": v.String()}).Debug("rotated")

	_, err = fmt.Fprintf(c.app.stdout, "[%s, %s, %s]\n", c.format(r.X), c.format(r.Y), c.format(r.Z))
	return err
}

// format prints x with the requested precision and without a negative zero.
func (c *rotateCommand) format(x float64) string {
	if math.Abs(x) < 0.5*math.Pow(10, -float64(c.Precision)) {
		x = 0
	}
	return strconv.FormatFloat(x, 'f', c.Precision, 64)
}
