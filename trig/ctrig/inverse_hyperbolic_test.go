package ctrig

import (
	"testing"
)

func TestAsinh(t *testing.T) {
	runCases(t, "Asinh", Asinh, []testCase{
		{complex(2, 3), complex(1.9686379257930964, 0.9646585044076028)},
		{complex(-2, 3), complex(-1.9686379257930964, 0.9646585044076028)},
		{complex(2, -3), complex(1.9686379257930964, -0.9646585044076028)},
		{complex(-2, -3), complex(-1.9686379257930964, -0.9646585044076028)},
		{complex(inf, 0), complex(inf, 0)},
		{complex(-inf, 0), complex(-inf, 0)},
		{complex(inf, 2), complex(inf, 0)},
		{complex(-inf, 2), complex(-inf, 0)},
		{complex(2, inf), complex(inf, pi/4)},
		{complex(2, -inf), complex(inf, -pi/4)},
		{complex(inf, -inf), nanNaN},
		{complex(maxF, 0), complex(inf, 0)},
		{complex(-maxF, 0), complex(-inf, 0)},
		{complex(eps, 0), 0},
		{0, 0},
	})
}

func TestAcosh(t *testing.T) {
	runCases(t, "Acosh", Acosh, []testCase{
		{0, complex(0, pi/2)},
		{complex(eps, 0), complex(0, pi/2)},
		{complex(1, 0), 0},
		{complex(2, 0), complex(1.3169578969248166, 0)},
		{complex(-1, 0), complex(0, pi)},
		{complex(-2, 0), complex(-1.3169578969248164, pi)},
		{complex(0.5, 0), complex(0, pi/3)},
		{complex(-0.5, 0), complex(0, 2*pi/3)},
		{complex(inf, 0), complex(inf, 0)},
		{complex(-inf, 0), complex(inf, nan)},
		{complex(inf, 2), complex(inf, pi/4)},
		{complex(2, inf), complex(inf, pi/4)},
		{complex(2, -inf), complex(inf, -pi/4)},
		{complex(-2, inf), nanNaN},
		{complex(-inf, 2), nanNaN},
		{complex(inf, -inf), nanNaN},
		{complex(-inf, inf), nanNaN},
		{complex(2, 3), complex(1.9833870299165355, 1.0001435424737972)},
		{complex(-2, 3), complex(-1.9833870299165355, -2.1414491111159957)},
		{complex(maxF, 0), complex(inf, 0)},
		{complex(-maxF, 0), complex(inf, 0)},
	})
}

func TestAtanh(t *testing.T) {
	runCases(t, "Atanh", Atanh, []testCase{
		{complex(1, 0), complex(inf, 0)},
		{complex(-1, 0), complex(-inf, 0)},
		{complex(2, 0), complex(0.5493061443340549, -pi/2)},
		{complex(-2, 0), complex(-0.5493061443340549, pi/2)},
		{complex(0.5, 0), complex(0.5493061443340549, 0)},
		{complex(inf, 0), complex(0, -pi/2)},
		{complex(-inf, 0), complex(0, pi/2)},
		{complex(inf, 2), complex(0, -pi/2)},
		{complex(-inf, 2), complex(0, pi/2)},
		{complex(2, inf), complex(0, pi/2)},
		{complex(2, -inf), complex(0, -pi/2)},
		{complex(-2, inf), complex(0, pi/2)},
		{complex(-200, -inf), complex(0, -pi/2)},
		{complex(maxF, 0), complex(0, -pi/2)},
		{complex(-maxF, 0), complex(0, pi/2)},
		{complex(inf, -inf), nanNaN},
		{complex(-inf, inf), nanNaN},
		{complex(2, 3), complex(0.14694666622552977, 1.3389725222944935)},
		{0, 0},
	})
}

func TestAcsch(t *testing.T) {
	runCases(t, "Acsch", Acsch, []testCase{
		{0, nanNaN},
		{complex(negZ, 0), nanNaN},
		{complex(eps, 0), complex(inf, 0)},
		{complex(-eps, 0), complex(-inf, 0)},
		{complex(0.5, 0), complex(1.4436354751788103, 0)},
		{complex(inf, 0), 0},
		{complex(-inf, 0), 0},
		{complex(inf, 2), 0},
		{complex(2, inf), 0},
		{complex(inf, -inf), 0},
		{complex(2, 3), complex(0.15735549884498545, -0.22996290237720785)},
	})
}

func TestAsech(t *testing.T) {
	runCases(t, "Asech", Asech, []testCase{
		{0, nanNaN},
		{complex(eps, 0), complex(inf, 0)},
		{complex(-eps, 0), complex(inf, pi)},
		{complex(0.5, 0), complex(1.3169578969248166, 0)},
		{complex(1, 0), 0},
		{complex(-0.5, 0), complex(-1.3169578969248164, pi)},
		{complex(-1, 0), complex(0, pi)},
		{complex(2, 0), complex(0, pi/3)},
		{complex(-2, 0), complex(0, 2*pi/3)},
		{complex(inf, 0), complex(0, pi/2)},
		{complex(-inf, 0), complex(0, pi/2)},
		{complex(inf, 2), complex(0, pi/2)},
		{complex(2, inf), complex(0, -pi/2)},
		{complex(2, -inf), complex(0, pi/2)},
		{complex(inf, -inf), nanNaN},
		{complex(-inf, inf), nanNaN},
		{complex(maxF, 0), complex(0, pi/2)},
		{complex(-maxF, 0), complex(0, pi/2)},
		{complex(2, 3), complex(0.23133469857397337, -1.4204107224670346)},
		{complex(-2, 3), complex(-0.23133469857397346, 1.7211819311227585)},
	})
}

func TestAcoth(t *testing.T) {
	runCases(t, "Acoth", Acoth, []testCase{
		{0, complex(0, -pi/2)},
		{complex(eps, 0), complex(0, -pi/2)},
		{complex(0.5, 0), complex(0.5493061443340549, -pi/2)},
		{complex(-0.5, 0), complex(-0.5493061443340549, -pi/2)},
		{complex(1, 0), complex(inf, 0)},
		{complex(-1, 0), complex(-inf, 0)},
		{complex(2, 0), complex(0.5493061443340549, 0)},
		{complex(-2, 0), complex(-0.5493061443340549, 0)},
		{complex(inf, 0), 0},
		{complex(-inf, 0), 0},
		{complex(inf, 2), 0},
		{complex(2, inf), 0},
		{complex(-2, -inf), 0},
		{complex(inf, -inf), nanNaN},
		{complex(-inf, inf), nanNaN},
		{complex(maxF, 0), 0},
		{complex(-maxF, 0), 0},
		{complex(2, 3), complex(0.14694666622552977, -0.23182380450040305)},
		{complex(-2, 3), complex(-0.14694666622552977, -0.23182380450040305)},
	})
}
