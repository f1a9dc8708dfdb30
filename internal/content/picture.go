package content

import "fmt"

// PictureType classifies an attached picture, as defined by the APIC
// frame specification.
type PictureType byte

// Picture types 0x00 through 0x14.
const (
	PictureOther             PictureType = 0x00
	PictureIcon              PictureType = 0x01 // 32x32 PNG file icon
	PictureOtherIcon         PictureType = 0x02
	PictureCoverFront        PictureType = 0x03
	PictureCoverBack         PictureType = 0x04
	PictureLeafletPage       PictureType = 0x05
	PictureMedia             PictureType = 0x06 // e.g. label side of CD
	PictureLeadArtist        PictureType = 0x07
	PictureArtist            PictureType = 0x08
	PictureConductor         PictureType = 0x09
	PictureBand              PictureType = 0x0A
	PictureComposer          PictureType = 0x0B
	PictureLyricist          PictureType = 0x0C
	PictureRecordingLocation PictureType = 0x0D
	PictureDuringRecording   PictureType = 0x0E
	PictureDuringPerformance PictureType = 0x0F
	PictureScreenCapture     PictureType = 0x10
	PictureBrightColoredFish PictureType = 0x11
	PictureIllustration      PictureType = 0x12
	PictureBandLogo          PictureType = 0x13
	PicturePublisherLogo     PictureType = 0x14
)

var pictureTypeNames = [...]string{
	"Other",
	"Icon",
	"OtherIcon",
	"CoverFront",
	"CoverBack",
	"LeafletPage",
	"Media",
	"LeadArtist",
	"Artist",
	"Conductor",
	"Band",
	"Composer",
	"Lyricist",
	"RecordingLocation",
	"DuringRecording",
	"DuringPerformance",
	"ScreenCapture",
	"BrightColoredFish",
	"Illustration",
	"BandLogo",
	"PublisherLogo",
}

// String returns the conventional picture type name.
func (p PictureType) String() string {
	if int(p) < len(pictureTypeNames) {
		return pictureTypeNames[p]
	}
	return fmt.Sprintf("Unknown(0x%02X)", byte(p))
}
