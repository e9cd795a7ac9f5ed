package sim

import "iter"

// Collides reports whether any obstacle center lies closer to the body's
// center than obstacleRadius+stickHalfLength. Only the center point is
// tested, not the segment.
func Collides(body *PhysicsBody, obstacles iter.Seq[Obstacle], stickHalfLength, obstacleRadius float64) bool {
	if body == nil {
		return false
	}
	reach := obstacleRadius + stickHalfLength
	for o := range obstacles {
		if body.Pos.Distance(o.Pos) < reach {
			return true
		}
	}
	return false
}
