package main

import "la-blog/services"

var sampleBlogs = []services.CreateBlogInput{
	{
		Title:   "Top 5 Residential Areas in Geeta Colony for Young Professionals",
		Summary: "The best neighborhoods in Geeta Colony offering the right blend of affordability, connectivity and modern amenities for working professionals.",
		Content: `
			<p>Geeta Colony has emerged as one of East Delhi's most sought-after residential destinations, particularly among young professionals seeking the right balance of affordability, connectivity and modern living.</p>
			<h2>1. Geeta Colony Main Market Area</h2>
			<p>The heart of the neighborhood offers <strong>excellent connectivity</strong> to major business districts while keeping housing affordable. The nearby metro station puts Connaught Place under 30 minutes away.</p>
			<h2>2. Yamuna Sports Complex Vicinity</h2>
			<p>Properties near the Yamuna Sports Complex put <strong>recreational facilities</strong> right at your doorstep, ideal for anyone who values work-life balance.</p>
			<h2>3. IP Extension Border</h2>
			<p>The border with IP Extension combines the tranquility of Geeta Colony with easy access to a commercial hub. <strong>Rental yields</strong> here have grown consistently for three years.</p>
			<h2>4. Krishna Nagar Junction</h2>
			<p>Well connected by public transport and surrounded by educational institutions, a solid pick for professionals planning ahead.</p>
			<h2>5. Shastri Park Metro Corridor</h2>
			<p>The newest addition to the list: <strong>property appreciation</strong> rates here are among the highest in East Delhi following the metro upgrades.</p>
			<p>Ready to explore? Contact our team for personalized recommendations and site visits.</p>
		`,
		Tags:      []string{"Geeta Colony", "Residential"},
		Thumbnail: "https://images.pexels.com/photos/323780/pexels-photo-323780.jpeg?auto=compress&cs=tinysrgb&w=800",
	},
	{
		Title:   "Rent vs Buy in East Delhi: A 2026 Guide",
		Summary: "A practical comparison of renting and buying in East Delhi right now, with the numbers that actually matter for your decision.",
		Content: `
			<p>The rent-versus-buy question has no universal answer, but in East Delhi the math has shifted noticeably over the last two years.</p>
			<h2>When renting wins</h2>
			<p>If you expect to relocate within three years, renting almost always comes out ahead. Transaction costs on a purchase typically eat 7-9% of the property value.</p>
			<h2>When buying wins</h2>
			<p>For stays beyond five years, ownership builds equity that renting cannot match, especially in corridors with metro-driven <strong>appreciation</strong>.</p>
			<h2>The middle ground</h2>
			<p>Rent-to-own arrangements are becoming more common with select builders; ask us which projects currently offer them.</p>
		`,
		Tags:      []string{"Buying Guide", "Residential"},
		Thumbnail: "https://images.pexels.com/photos/186077/pexels-photo-186077.jpeg?auto=compress&cs=tinysrgb&w=800",
	},
	{
		Title:   "Commercial Property Investment Opportunities Near Karkardooma Court",
		Summary: "Why the Karkardooma Court complex area is drawing commercial investors, and which property types offer the best returns today.",
		Content: `
			<p>The area around Karkardooma Court has quietly become one of East Delhi's strongest commercial micro-markets.</p>
			<h2>Office spaces</h2>
			<p>Small office units of 400-800 sq ft near the court complex enjoy near-permanent demand from legal practices and allied services.</p>
			<h2>Retail frontage</h2>
			<p>Ground-floor retail on the main approach roads commands <strong>premium rents</strong> with vacancy rates under 4%.</p>
			<h2>What to watch</h2>
			<p>Upcoming metro interchange work will disrupt access for a period; factor the construction timeline into any near-term purchase.</p>
		`,
		Tags:      []string{"Commercial", "Investment"},
		Thumbnail: "https://images.pexels.com/photos/269077/pexels-photo-269077.jpeg?auto=compress&cs=tinysrgb&w=800",
	},
}
