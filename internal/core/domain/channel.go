package domain

// Channel identifies the distribution channel an inventory item runs on.
type Channel string

const (
	ChannelWebsite        Channel = "website"
	ChannelNewsletter     Channel = "newsletter"
	ChannelRadio          Channel = "radio"
	ChannelPodcast        Channel = "podcast"
	ChannelPrint          Channel = "print"
	ChannelSocial         Channel = "social"
	ChannelEvents         Channel = "events"
	ChannelStreamingVideo Channel = "streaming-video"
)
