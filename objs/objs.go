/*
   Copyright 2025 The mrpt-go Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package objs declares a small hierarchy of sensor-flavored classes
// registered with the global class registry. It doubles as the reference
// for how a class participates in the RTTI system: one package-level
// descriptor per class, deferred registration from init, and value-copy
// clones.
package objs

import (
	"time"

	"github.com/jjxforever/mrpt"
	"github.com/jjxforever/mrpt/apis"
)

func init() {
	mrpt.RegisterClassDeferred(func(r apis.Registry) {
		_ = r.Register(ObservationClassID)
		_ = r.Register(ObservationIMUClassID)
		_ = r.Register(ObservationOdometryClassID)
		_ = r.Register(Pose2DClassID)
		// Legacy serialization name kept for archives written by the
		// C++ toolkit.
		_ = r.RegisterAlias("CPose2D", Pose2DClassID)
	})
}

// ObservationClassID identifies the abstract base of all sensor
// observations. It has no factory: observations are only created as one of
// the concrete subclasses.
var ObservationClassID = &apis.Descriptor{
	Name: "Observation",
	Base: func() *apis.Descriptor { return apis.ObjectClassID },
}

// Observation carries the fields shared by every sensor observation.
// It is meant to be embedded, not instantiated.
type Observation struct {
	// Timestamp is the capture time of the observation.
	Timestamp time.Time
	// SensorLabel identifies the originating sensor ("IMU_XSENS", ...).
	SensorLabel string
}

// ObservationIMUClassID identifies ObservationIMU.
var ObservationIMUClassID = &apis.Descriptor{
	Name:    "ObservationIMU",
	Factory: func() apis.Object { return &ObservationIMU{} },
	Base:    func() *apis.Descriptor { return ObservationClassID },
}

// ObservationIMU is one reading of an inertial measurement unit.
type ObservationIMU struct {
	Observation

	// Acceleration is the linear acceleration in m/s^2, sensor frame.
	Acceleration [3]float64
	// AngularVelocity is the rotation rate in rad/s, sensor frame.
	AngularVelocity [3]float64
}

// GetRuntimeClass returns the class descriptor of ObservationIMU.
func (o *ObservationIMU) GetRuntimeClass() *apis.Descriptor { return ObservationIMUClassID }

// Clone returns a deep copy of the observation.
func (o *ObservationIMU) Clone() apis.Object {
	c := *o
	return &c
}

// ObservationOdometryClassID identifies ObservationOdometry.
var ObservationOdometryClassID = &apis.Descriptor{
	Name:    "ObservationOdometry",
	Factory: func() apis.Object { return &ObservationOdometry{} },
	Base:    func() *apis.Descriptor { return ObservationClassID },
}

// ObservationOdometry is an accumulated wheel-odometry reading.
type ObservationOdometry struct {
	Observation

	// Odometry is the accumulated pose (x, y, phi) since startup.
	Odometry Pose2D
}

// GetRuntimeClass returns the class descriptor of ObservationOdometry.
func (o *ObservationOdometry) GetRuntimeClass() *apis.Descriptor { return ObservationOdometryClassID }

// Clone returns a deep copy of the observation.
func (o *ObservationOdometry) Clone() apis.Object {
	c := *o
	return &c
}

// Pose2DClassID identifies Pose2D. The class is also registered under the
// legacy alias "CPose2D".
var Pose2DClassID = &apis.Descriptor{
	Name:    "Pose2D",
	Factory: func() apis.Object { return &Pose2D{} },
	Base:    func() *apis.Descriptor { return apis.ObjectClassID },
}

// Pose2D is a planar pose: position plus heading.
type Pose2D struct {
	X, Y float64
	// Phi is the heading in radians.
	Phi float64
}

// GetRuntimeClass returns the class descriptor of Pose2D.
func (p *Pose2D) GetRuntimeClass() *apis.Descriptor { return Pose2DClassID }

// Clone returns a copy of the pose.
func (p *Pose2D) Clone() apis.Object {
	c := *p
	return &c
}
