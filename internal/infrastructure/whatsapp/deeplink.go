package whatsapp

import "veggiequote/internal/usecase/interfaces"

// PassthroughOpener is the default ILinkOpener for the HTTP deployment: the
// deep link is returned to the caller's UI, which performs the actual open,
// so handing it over always succeeds here. Deployments that drive a real
// browsing context plug in their own opener and report blocked popups.
type PassthroughOpener struct{}

var _ interfaces.ILinkOpener = PassthroughOpener{}

func NewPassthroughOpener() PassthroughOpener {
	return PassthroughOpener{}
}

func (PassthroughOpener) Open(string) error { return nil }
