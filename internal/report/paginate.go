package report

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Discord caps embeds at 25 fields; one slot is reserved for the header
// field repeated on every page, leaving 24 record fields per page.
const fieldsPerPage = 24

const embedColor = 0xFF00FF

type field struct {
	title string
	body  string
}

// paginate splits records into embed pages. Every page leads with the
// non-counted header field; continuation pages are numbered from 2.
func (a *Aggregator) paginate(baseTitle string, header field, records []FieldRecord) []*discordgo.MessageEmbed {
	pageCount := (len(records) + fieldsPerPage - 1) / fieldsPerPage
	if pageCount == 0 {
		pageCount = 1
	}

	pages := make([]*discordgo.MessageEmbed, 0, pageCount)
	for index := 0; index < pageCount; index++ {
		title := baseTitle
		if index > 0 {
			title = fmt.Sprintf("%s - continued - Pg %d", baseTitle, index+1)
		}

		embed := &discordgo.MessageEmbed{
			Title:     title,
			Color:     embedColor,
			Timestamp: a.now().Format(time.RFC3339),
			Fields: []*discordgo.MessageEmbedField{
				{Name: header.title, Value: header.body},
			},
		}

		limit := index*fieldsPerPage + fieldsPerPage
		if limit > len(records) {
			limit = len(records)
		}
		for i := index * fieldsPerPage; i < limit; i++ {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  records[i].Title,
				Value: records[i].Body,
			})
		}

		pages = append(pages, embed)
	}
	return pages
}
