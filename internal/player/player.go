// Package player implements movement, collision, and the raycast block-edit
// contract against an internal/world.World.
package player

import (
	"math"

	"voxelgame/internal/camera"
	"voxelgame/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// RaycastStep is the fixed march step used by Raycast. A ray that crosses a
// block for less than one step (clipping an edge or corner) can pass it
// without a hit.
const RaycastStep = 0.05

// RaycastMaxDistance is the default edit reach.
const RaycastMaxDistance = 10.0

// TargetBlock is the result of the most recent raycast: the hit block and
// the empty cell immediately before it, where a placed block would land.
type TargetBlock struct {
	Hit      bool
	HitPos   mgl32.Vec3
	PlacePos mgl32.Vec3
}

type Player struct {
	camera   *camera.Camera
	world    *world.World
	speed    float32
	velocity mgl32.Vec3

	grounded bool
	width    float32
	height   float32

	target TargetBlock
}

func NewPlayer(cam *camera.Camera, w *world.World) *Player {
	return &Player{
		camera: cam,
		world:  w,
		width:  0.6,
		height: 1.8,
		speed:  1.2,
	}
}

func (p *Player) Update(deltaTime float32) {
	if !p.grounded {
		p.velocity[1] -= 20.0 * deltaTime
	}

	newPos := p.camera.Position.Add(p.velocity.Mul(deltaTime))
	newPos = p.handleCollision(newPos)
	p.camera.Position = newPos

	p.grounded = p.isGrounded()
	p.velocity = p.velocity.Mul(0.8)

	p.updateTarget()
}

func (p *Player) updateTarget() {
	p.target = p.Raycast(RaycastMaxDistance)
}

func (p *Player) TargetBlock() TargetBlock {
	return p.target
}

func (p *Player) Move(direction mgl32.Vec3) {
	p.velocity = p.velocity.Add(direction.Mul(p.speed))
}

func (p *Player) Jump() {
	if p.grounded {
		p.velocity[1] = 8.0
	}
}

// TeleportToCamera resets physics state after a debug free-fly session ends.
// The player and camera already share a position (Update writes directly to
// camera.Position), so only the velocity carried over from free flight needs
// clearing before normal gravity/collision resumes.
func (p *Player) TeleportToCamera() {
	p.velocity = mgl32.Vec3{}
	p.grounded = false
}

func (p *Player) handleCollision(newPos mgl32.Vec3) mgl32.Vec3 {
	minX := int(math.Floor(float64(newPos[0] - p.width/2)))
	maxX := int(math.Floor(float64(newPos[0] + p.width/2)))
	minY := int(math.Floor(float64(newPos[1])))
	maxY := int(math.Floor(float64(newPos[1] + p.height)))
	minZ := int(math.Floor(float64(newPos[2] - p.width/2)))
	maxZ := int(math.Floor(float64(newPos[2] + p.width/2)))

	for y := minY; y <= maxY; y++ {
		for z := minZ; z <= maxZ; z++ {
			if p.world.Get(minX, y, z) != world.Air || p.world.Get(maxX, y, z) != world.Air {
				newPos[0] = p.camera.Position[0]
				p.velocity[0] = 0
				break
			}
		}
	}

	minX = int(math.Floor(float64(newPos[0] - p.width/2)))
	maxX = int(math.Floor(float64(newPos[0] + p.width/2)))
	minZ = int(math.Floor(float64(newPos[2] - p.width/2)))
	maxZ = int(math.Floor(float64(newPos[2] + p.width/2)))

	for x := minX; x <= maxX; x++ {
		for z := minZ; z <= maxZ; z++ {
			if p.world.Get(x, minY, z) != world.Air || p.world.Get(x, maxY, z) != world.Air {
				newPos[1] = p.camera.Position[1]
				p.velocity[1] = 0
				break
			}
		}
	}

	minX = int(math.Floor(float64(newPos[0] - p.width/2)))
	maxX = int(math.Floor(float64(newPos[0] + p.width/2)))
	minY = int(math.Floor(float64(newPos[1])))
	maxY = int(math.Floor(float64(newPos[1] + p.height)))

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			if p.world.Get(x, y, minZ) != world.Air || p.world.Get(x, y, maxZ) != world.Air {
				newPos[2] = p.camera.Position[2]
				p.velocity[2] = 0
				break
			}
		}
	}

	return newPos
}

func (p *Player) isGrounded() bool {
	minX := int(math.Floor(float64(p.camera.Position[0] - p.width/2)))
	maxX := int(math.Floor(float64(p.camera.Position[0] + p.width/2)))
	minZ := int(math.Floor(float64(p.camera.Position[2] - p.width/2)))
	maxZ := int(math.Floor(float64(p.camera.Position[2] + p.width/2)))
	checkY := int(math.Floor(float64(p.camera.Position[1]))) - 1

	for x := minX; x <= maxX; x++ {
		for z := minZ; z <= maxZ; z++ {
			if p.world.Get(x, checkY, z) != world.Air {
				return true
			}
		}
	}
	return false
}

// Raycast marches RaycastStep units at a time along the camera's look
// direction up to maxDistance, returning the first non-Air block hit and
// the last Air cell immediately before it (where a placed block lands).
func (p *Player) Raycast(maxDistance float32) TargetBlock {
	pos := p.camera.Position
	dir := p.camera.Front

	lastAir := pos
	for dist := float32(0); dist < maxDistance; dist += RaycastStep {
		checkPos := pos.Add(dir.Mul(dist))
		bx := int(math.Floor(float64(checkPos[0])))
		by := int(math.Floor(float64(checkPos[1])))
		bz := int(math.Floor(float64(checkPos[2])))

		if p.world.Get(bx, by, bz) != world.Air {
			return TargetBlock{
				Hit:      true,
				HitPos:   mgl32.Vec3{float32(bx), float32(by), float32(bz)},
				PlacePos: lastAir,
			}
		}
		lastAir = mgl32.Vec3{float32(bx), float32(by), float32(bz)}
	}

	return TargetBlock{}
}

// BreakBlock removes the targeted block, a no-op if nothing is targeted.
func (p *Player) BreakBlock() {
	if !p.target.Hit {
		return
	}
	pos := p.target.HitPos
	p.world.Set(int(pos.X()), int(pos.Y()), int(pos.Z()), world.Air)
}

// PlaceBlock sets block at the last-Air cell before the current target,
// refusing placement if it would overlap the player's own AABB.
func (p *Player) PlaceBlock(block world.VoxelID) {
	if !p.target.Hit {
		return
	}

	pos := p.target.PlacePos
	x, y, z := int(pos.X()), int(pos.Y()), int(pos.Z())

	if p.collidesWithPlayer(float32(x), float32(y), float32(z)) {
		return
	}

	p.world.Set(x, y, z, block)
}

func (p *Player) collidesWithPlayer(x, y, z float32) bool {
	px := p.camera.Position.X()
	py := p.camera.Position.Y()
	pz := p.camera.Position.Z()

	return mgl32.Abs(px-x) < p.width &&
		py < y+p.height &&
		py+p.height > y &&
		mgl32.Abs(pz-z) < p.width
}
