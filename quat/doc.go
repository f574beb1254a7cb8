// Package quat provides rotation quaternions stored as (x, y, z, w).
//
// Rotation operations assume unit length. Nothing checks this; a
// non-unit quaternion rotates and scales.
//
// Euler angles use roll about X, pitch about Y and yaw about Z, composed as
// Z·Y·X (yaw applied last).
package quat
