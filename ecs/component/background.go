package component

type Background struct {
	Visible bool
}

var BackgroundComponent = NewComponent[Background]()
