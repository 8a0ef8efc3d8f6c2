package announcer

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/x-xyz/storefront/base/backoff"
	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/log"
)

const sendAttempts = 3

type DiscordConfig struct {
	BotKey        string
	ChannelId     string
	StorefrontUrl string
	IpfsGateway   string
}

type embedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
}

type discordImpl struct {
	config  DiscordConfig
	discord embedSender
}

// NewDiscord announces to a discord channel, or nowhere when no bot key is set
func NewDiscord(config DiscordConfig) (Announcer, error) {
	if config.BotKey == "" {
		return &noop{}, nil
	}
	discord, err := discordgo.New(fmt.Sprintf("Bot %s", config.BotKey))
	if err != nil {
		return nil, err
	}
	return &discordImpl{config: config, discord: discord}, nil
}

func (d *discordImpl) AnnounceSale(c ctx.Ctx, sale Sale) error {
	imageUrl := sale.Image
	if strings.HasPrefix(imageUrl, "ipfs://") && d.config.IpfsGateway != "" {
		imageUrl = strings.Replace(imageUrl, "ipfs://", strings.TrimSuffix(d.config.IpfsGateway, "/")+"/", 1)
	}

	msg := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s sold!", sale.Name),
		Description: fmt.Sprintf("%s/listing/%s", strings.TrimSuffix(d.config.StorefrontUrl, "/"), sale.ListingId),
		Image: &discordgo.MessageEmbedImage{
			URL: imageUrl,
		},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Seller", Value: string(sale.Seller)},
			{Name: "Buyer", Value: string(sale.Buyer)},
			{Name: "Network", Value: sale.Network},
			{Name: "Price", Value: sale.Price},
			{Name: "Transaction", Value: string(sale.TxHash)},
		},
	}

	b := backoff.NewExponential(500*time.Millisecond, 5*time.Second)
	err := backoff.Retry(c, b, sendAttempts, func() error {
		_, err := d.discord.ChannelMessageSendEmbed(d.config.ChannelId, msg)
		return err
	})
	if err != nil {
		c.WithFields(log.Fields{
			"listingId": sale.ListingId,
			"err":       err,
		}).Error("discord.ChannelMessageSendEmbed failed")
		return err
	}
	return nil
}

type noop struct{}

func (*noop) AnnounceSale(c ctx.Ctx, sale Sale) error {
	return nil
}
