package core

import "math"

// Step advances the session by dt seconds.
//
// Order within a step:
//  1. Restart (only while dead or finished; consumes the step)
//  2. Song clock, manual jump on the press edge, beat pulse
//  3. Speed boost, flip cooldown and shake timers
//  4. Run speed, gravity, integration
//  5. Floor and ceiling, then moving platforms in level order
//  6. Jump, speed and gravity pads
//  7. Spikes (first hit is fatal)
//  8. Auto-jump on the landing edge while jump is held
//  9. Finish line, camera, particles
//
// dt must already be clamped by the caller; negative values are treated as 0.
// The returned events slice is reused by the next Step.
func (s *Session) Step(in Input, dt float64) StepResult {
	s.events = s.events[:0]
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}

	if in.RestartPressed && s.phase != PhaseRunning {
		s.Restart()
		s.emit(EventRestart, Color{})
		return s.result()
	}

	stopped := s.phase != PhaseRunning
	if !stopped || !s.params.FreezeOnStop {
		s.songTime += dt
	}

	p := &s.player
	if s.phase == PhaseRunning {
		s.holdJump = in.JumpHeld
		if in.JumpPressed && p.Grounded {
			s.jump()
		}
	}

	s.pulse = BeatPulse(s.songTime, s.params.BPM, s.params.PulseDecay)
	s.phaseTime = PhaseTime(s.songTime, s.pulse, s.params.PhaseJitter)

	s.tickTimers(dt)

	if s.phase == PhaseRunning {
		p.Vel.X = s.params.RunSpeed * s.speed.Multiplier
	} else {
		p.Vel.X = 0
	}

	if s.phase != PhaseDead {
		p.Vel.Y += s.params.Gravity * float64(s.gravity.Direction) * dt
		p.Rect.X += p.Vel.X * dt
		p.Rect.Y += p.Vel.Y * dt

		s.clampRails()
		s.resolvePlatforms(dt)
	}

	if s.phase == PhaseRunning {
		s.triggerPads()
		s.checkHazards()
	}

	if s.phase == PhaseRunning && s.params.HoldToJump && s.holdJump && !p.PrevGrounded && p.Grounded {
		s.jump()
	}

	if s.phase == PhaseRunning && p.Rect.Intersects(s.level.Finish) {
		s.finish()
	}

	s.camX = p.Rect.X - s.params.CameraLead

	for _, ev := range s.events {
		if b, c, ok := BurstFor(ev); ok {
			s.particles.Emit(b, ev.Player, c)
		}
	}
	s.particles.Update(dt)

	if s.shake > 0 {
		s.shakeX = (s.shakeRng.Float64()*2 - 1) * s.shake
		s.shakeY = (s.shakeRng.Float64()*2 - 1) * s.shake
	} else {
		s.shakeX, s.shakeY = 0, 0
	}

	p.PrevGrounded = p.Grounded
	return s.result()
}

func (s *Session) result() StepResult {
	return StepResult{Phase: s.phase, Events: s.events}
}

func (s *Session) emit(kind EventKind, c Color) {
	s.events = append(s.events, Event{Kind: kind, Player: s.player.Rect, Color: c})
}

// jump launches the player off the current floor.
func (s *Session) jump() {
	s.player.Vel.Y = s.params.JumpVelocity * float64(s.gravity.Direction)
	s.player.Grounded = false
	s.emit(EventJump, Color{})
}

func (s *Session) tickTimers(dt float64) {
	s.speed.tick(dt)
	s.gravity.Cooldown = math.Max(0, s.gravity.Cooldown-dt)
	if s.shake > 0 {
		s.shake = math.Max(0, s.shake-s.params.ShakeDecay*dt)
	}
}

// clampRails keeps the player between the ceiling and floor lines. The rail
// on the gravity side grounds the player; the other one only stops motion into it.
func (s *Session) clampRails() {
	p := &s.player
	floor, ceiling := s.level.FloorY, s.level.CeilingY

	p.Grounded = false
	if !s.gravity.Inverted() {
		if p.Rect.Bottom() >= floor {
			p.Rect.Y = floor - p.Rect.H
			p.Vel.Y = 0
			p.Grounded = true
		}
		if p.Rect.Y <= ceiling {
			p.Rect.Y = ceiling
			if p.Vel.Y < 0 {
				p.Vel.Y = 0
			}
		}
		return
	}

	if p.Rect.Y <= ceiling {
		p.Rect.Y = ceiling
		p.Vel.Y = 0
		p.Grounded = true
	}
	if p.Rect.Bottom() >= floor {
		p.Rect.Y = floor - p.Rect.H
		if p.Vel.Y > 0 {
			p.Vel.Y = 0
		}
	}
}

// resolvePlatforms pushes the player out of every overlapping platform near it.
func (s *Session) resolvePlatforms(dt float64) {
	p := &s.player
	for i := range s.level.Platforms {
		pl := &s.level.Platforms[i]
		pr := pl.RectAt(s.phaseTime)
		if pr.Right() < p.Rect.X-s.params.CullBehind || pr.X > p.Rect.X+s.params.CullAhead {
			continue
		}
		if !p.Rect.Intersects(pr) {
			continue
		}
		s.resolvePlatform(pl, pr, dt)
	}
}

// resolvePlatform decides the contact side from where the player was one step
// ago. The first matching side wins. Landing is from above under normal gravity
// and from below when inverted.
func (s *Session) resolvePlatform(pl *Platform, pr Rect, dt float64) {
	p := &s.player
	tol := s.params.ContactTolerance
	prev := p.Rect.Translate(-p.Vel.X*dt, -p.Vel.Y*dt)

	fromTop := prev.Bottom() <= pr.Y+tol
	fromBottom := prev.Y >= pr.Bottom()-tol
	fromLeft := prev.Right() <= pr.X+tol
	fromRight := prev.X >= pr.Right()-tol

	land, bonk := fromTop, fromBottom
	if s.gravity.Inverted() {
		land, bonk = fromBottom, fromTop
	}

	switch {
	case land:
		if s.gravity.Inverted() {
			p.Rect.Y = pr.Bottom()
		} else {
			p.Rect.Y = pr.Y - p.Rect.H
		}
		p.Vel.Y = 0
		p.Grounded = true
		if pl.Axis == AxisHorizontal && pl.Moving() {
			p.Rect.X += pl.VelocityAt(s.phaseTime) * dt * s.params.CarryDamping
		}
	case bonk:
		if s.gravity.Inverted() {
			p.Rect.Y = pr.Y - p.Rect.H
			if p.Vel.Y > 0 {
				p.Vel.Y = 0
			}
		} else {
			p.Rect.Y = pr.Bottom()
			if p.Vel.Y < 0 {
				p.Vel.Y = 0
			}
		}
	case fromLeft:
		p.Rect.X = pr.X - p.Rect.W
	case fromRight:
		p.Rect.X = pr.Right()
	}
}

// triggerPads applies every pad the player overlaps, in level order.
func (s *Session) triggerPads() {
	p := &s.player
	dir := float64(s.gravity.Direction)

	for _, jp := range s.level.JumpPads {
		if !p.Rect.Intersects(jp.Rect) {
			continue
		}
		p.Vel.Y = s.params.JumpVelocity * dir * jp.Strength
		p.Grounded = false
		s.emit(EventJumpPad, jp.Color)
	}

	for _, sp := range s.level.SpeedPads {
		if !p.Rect.Intersects(sp.Rect) {
			continue
		}
		if !s.speed.Active() || s.speed.Multiplier != sp.Multiplier {
			s.logger.Debug("speed boost", "multiplier", sp.Multiplier, "duration", sp.Duration, "x", p.Rect.X)
		}
		s.speed = SpeedModifier{Multiplier: sp.Multiplier, Remaining: sp.Duration}
		p.Vel.X = s.params.RunSpeed * s.speed.Multiplier
		s.emit(EventSpeedPad, sp.Color)
	}

	if !s.params.GravityPads {
		return
	}
	for _, gp := range s.level.GravityPads {
		if !p.Rect.Intersects(gp.Rect) || s.gravity.Cooldown > 0 {
			continue
		}
		s.flipGravity()
		s.emit(EventGravityFlip, gp.Color)
	}
}

// flipGravity inverts gravity and stands the player on the new floor.
func (s *Session) flipGravity() {
	p := &s.player
	s.gravity.Direction = -s.gravity.Direction
	s.gravity.Cooldown = s.params.FlipCooldown

	p.Vel.Y = 0
	if s.gravity.Inverted() {
		p.Rect.Y = s.level.CeilingY + s.params.FlipInset
	} else {
		p.Rect.Y = s.level.FloorY - p.Rect.H - s.params.FlipInset
	}
	// Suppress the landing edge so hold-to-jump does not fire on the flip.
	p.Grounded = true
	p.PrevGrounded = true

	s.logger.Debug("gravity flipped", "direction", s.gravity.Direction, "x", p.Rect.X)
}

// checkHazards kills the player on the first spike touched.
func (s *Session) checkHazards() {
	p := &s.player
	for _, sp := range s.level.Spikes {
		if !NearSpike(p.Rect, sp, s.params.SpikeMargin) {
			continue
		}
		if CollidesWithSpike(p.Rect, sp) {
			s.crash()
			return
		}
	}
}

func (s *Session) crash() {
	s.phase = PhaseDead
	s.shake = s.params.DeathShake
	s.player.Vel = Vec2{}
	s.emit(EventCrash, Color{})

	sec, _ := s.level.SectionAt(s.player.Rect.X)
	s.logger.Info("player crashed",
		"x", int(s.player.Rect.X),
		"section", int(sec.StartX),
		"song_time", s.songTime,
		"attempt", s.attempts)
}

func (s *Session) finish() {
	s.phase = PhaseFinished
	s.player.Vel = Vec2{}
	s.emit(EventFinish, Color{})
	s.logger.Info("level finished", "time", s.songTime, "attempts", s.attempts)
}
