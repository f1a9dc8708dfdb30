package id3codec

import "github.com/simonhull/id3codec/internal/content"

// Content is an alias to content.Content, the closed variant holding a
// frame's decoded payload. Exactly one Content value exists per Frame;
// the identifier determines which variant is semantically expected.
type Content = content.Content

// Payload variants, re-exported from internal/content.
type (
	// Text is the payload of a text information frame (e.g. TIT2, TALB).
	Text = content.Text
	// Link is the payload of a URL link frame (e.g. WOAR).
	Link = content.Link
	// ExtendedText is a user-defined text frame payload (TXXX).
	ExtendedText = content.ExtendedText
	// ExtendedLink is a user-defined URL frame payload (WXXX).
	ExtendedLink = content.ExtendedLink
	// Comment is a comment frame payload (COMM).
	Comment = content.Comment
	// Lyrics is an unsynchronized lyrics frame payload (USLT).
	Lyrics = content.Lyrics
	// Picture is an attached picture frame payload (APIC).
	Picture = content.Picture
	// Unknown holds the raw body of a frame whose identifier is
	// unrecognized or whose decoding is not implemented.
	Unknown = content.Unknown
)

// PictureType classifies an attached picture.
type PictureType = content.PictureType

// Re-export the picture types.
const (
	PictureOther             = content.PictureOther
	PictureIcon              = content.PictureIcon
	PictureOtherIcon         = content.PictureOtherIcon
	PictureCoverFront        = content.PictureCoverFront
	PictureCoverBack         = content.PictureCoverBack
	PictureLeafletPage       = content.PictureLeafletPage
	PictureMedia             = content.PictureMedia
	PictureLeadArtist        = content.PictureLeadArtist
	PictureArtist            = content.PictureArtist
	PictureConductor         = content.PictureConductor
	PictureBand              = content.PictureBand
	PictureComposer          = content.PictureComposer
	PictureLyricist          = content.PictureLyricist
	PictureRecordingLocation = content.PictureRecordingLocation
	PictureDuringRecording   = content.PictureDuringRecording
	PictureDuringPerformance = content.PictureDuringPerformance
	PictureScreenCapture     = content.PictureScreenCapture
	PictureBrightColoredFish = content.PictureBrightColoredFish
	PictureIllustration      = content.PictureIllustration
	PictureBandLogo          = content.PictureBandLogo
	PicturePublisherLogo     = content.PicturePublisherLogo
)
