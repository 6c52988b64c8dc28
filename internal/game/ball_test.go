package game

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func TestBall_Move(t *testing.T) {
	ball := NewBall(10.0, 20.0, DefaultBallRadius)
	ball.VX = 1.0
	ball.VY = -0.5

	ball.Move()

	if ball.X != 11.0 {
		t.Errorf("expected X=11.0, got %f", ball.X)
	}
	if ball.Y != 19.5 {
		t.Errorf("expected Y=19.5, got %f", ball.Y)
	}
}

func TestBall_Bounces(t *testing.T) {
	ball := NewBall(10.0, 20.0, DefaultBallRadius)
	ball.VX = 0.5
	ball.VY = 0.3

	ball.BounceVertical()
	if ball.VX != 0.5 || ball.VY != -0.3 {
		t.Errorf("BounceVertical: expected (0.5, -0.3), got (%f, %f)", ball.VX, ball.VY)
	}

	ball.BounceHorizontal()
	if ball.VX != -0.5 || ball.VY != -0.3 {
		t.Errorf("BounceHorizontal: expected (-0.5, -0.3), got (%f, %f)", ball.VX, ball.VY)
	}
}

func TestBall_SetSpeed(t *testing.T) {
	tests := []struct {
		name   string
		vx, vy float64
		speed  float64
	}{
		{"down right", 3, 1, 8},
		{"up right", 3, -1, 8},
		{"down left", -6.4, 1.6, 12},
		{"up left", -0.1, -0.7, 8},
		{"horizontal", 5, 0, 12},
		{"slow down", 9, -3, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := NewBall(0, 0, DefaultBallRadius)
			ball.VX = tt.vx
			ball.VY = tt.vy

			ball.SetSpeed(tt.speed)

			if ball.Speed != tt.speed {
				t.Errorf("expected Speed=%f, got %f", tt.speed, ball.Speed)
			}
			if !almostEqual(ball.ManhattanSpeed(), tt.speed) {
				t.Errorf("expected |vx|+|vy|=%f, got %f", tt.speed, ball.ManhattanSpeed())
			}
			if sign(ball.VX) != sign(tt.vx) {
				t.Errorf("VX sign changed: before %f, after %f", tt.vx, ball.VX)
			}
			if sign(ball.VY) != sign(tt.vy) {
				t.Errorf("VY sign changed: before %f, after %f", tt.vy, ball.VY)
			}
		})
	}
}

func TestBall_SetSpeed_IsManhattanNotEuclidean(t *testing.T) {
	ball := NewBall(0, 0, DefaultBallRadius)
	ball.VX = 3
	ball.VY = 1

	ball.SetSpeed(8)

	if ball.VX != 6 || ball.VY != 2 {
		t.Errorf("expected velocity (6, 2), got (%f, %f)", ball.VX, ball.VY)
	}
}

func TestBall_SetSpeed_StillBall(t *testing.T) {
	ball := NewBall(0, 0, DefaultBallRadius)

	ball.SetSpeed(8)

	if ball.VX != 0 || ball.VY != 0 {
		t.Errorf("expected still ball to stay still, got (%f, %f)", ball.VX, ball.VY)
	}
	if ball.Speed != 8 {
		t.Errorf("expected Speed=8, got %f", ball.Speed)
	}
}

func TestBall_Launch(t *testing.T) {
	ball := NewBall(0, 0, DefaultBallRadius)
	ball.Speed = 10

	ball.Launch(true)
	if !almostEqual(ball.VX, -8) || !almostEqual(ball.VY, -2) {
		t.Errorf("launch left: expected (-8, -2), got (%f, %f)", ball.VX, ball.VY)
	}

	ball.Launch(false)
	if !almostEqual(ball.VX, 8) || !almostEqual(ball.VY, 2) {
		t.Errorf("launch right: expected (8, 2), got (%f, %f)", ball.VX, ball.VY)
	}
}

func TestBall_Reset(t *testing.T) {
	ball := NewBall(100.0, 100.0, DefaultBallRadius)
	ball.VX = 9.0
	ball.VY = -3.0
	ball.Speed = 12

	ball.Reset(40, 12, 8)

	if ball.X != 40 || ball.Y != 12 {
		t.Errorf("expected position (40, 12), got (%f, %f)", ball.X, ball.Y)
	}
	if ball.Speed != 8 {
		t.Errorf("expected Speed=8, got %f", ball.Speed)
	}
	if !almostEqual(ball.ManhattanSpeed(), 8) {
		t.Errorf("expected |vx|+|vy|=8, got %f", ball.ManhattanSpeed())
	}
	if ball.VX <= 0 || ball.VY >= 0 {
		t.Errorf("expected direction kept, got (%f, %f)", ball.VX, ball.VY)
	}
}
